// Package archive creates and extracts zstd-compressed tar snapshots of
// save data.
package archive

import (
	"archive/tar"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/schollz/progressbar/v3"
)

// Extension is the file extension of every backup archive.
const Extension = ".tar.zst"

// Create writes a zstd-compressed tar archive of src to dst. A directory
// source is archived recursively, relative to the archive root; a file
// source becomes a single entry named after its base name. File modes and
// symlinks are preserved.
func Create(dst, src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("could not read save location %s: %w", src, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("could not create backup %s: %w", dst, err)
	}
	// High-ratio compression: backups are infrequent, manual operations.
	zw, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		out.Close()
		return fmt.Errorf("could not create backup %s: %w", dst, err)
	}
	tw := tar.NewWriter(zw)

	if info.IsDir() {
		err = addDirAll(tw, src)
	} else {
		err = addFile(tw, src, filepath.Base(src), info)
	}
	if err != nil {
		tw.Close()
		zw.Close()
		out.Close()
		return err
	}

	if err := tw.Close(); err != nil {
		zw.Close()
		out.Close()
		return fmt.Errorf("could not finish backup %s: %w", dst, err)
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("could not finish backup %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not finish backup %s: %w", dst, err)
	}
	return nil
}

// addDirAll walks src and appends its entire contents under the archive
// root, counting files first so the progress bar has a total.
func addDirAll(tw *tar.Writer, src string) error {
	total := 0
	err := filepath.WalkDir(src, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			total++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not scan save location %s: %w", src, err)
	}
	bar := progressbar.Default(int64(total), "archiving")

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("could not archive %s: %w", path, err)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("could not archive %s: %w", path, err)
		}
		if rel == "." {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("could not archive %s: %w", path, err)
		}
		name := filepath.ToSlash(rel)

		switch {
		case d.IsDir():
			hdr, err := tar.FileInfoHeader(info, "")
			if err != nil {
				return fmt.Errorf("could not archive %s: %w", path, err)
			}
			hdr.Name = name + "/"
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("could not archive %s: %w", path, err)
			}
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return fmt.Errorf("could not archive %s: %w", path, err)
			}
			hdr, err := tar.FileInfoHeader(info, target)
			if err != nil {
				return fmt.Errorf("could not archive %s: %w", path, err)
			}
			hdr.Name = name
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("could not archive %s: %w", path, err)
			}
			bar.Add(1)
		case d.Type().IsRegular():
			if err := addFile(tw, path, name, info); err != nil {
				return err
			}
			bar.Add(1)
		}
		// Sockets, devices and the like are skipped.
		return nil
	})
}

func addFile(tw *tar.Writer, path, name string, info fs.FileInfo) error {
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("could not archive %s: %w", path, err)
	}
	hdr.Name = name
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("could not archive %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not archive %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("could not archive %s: %w", path, err)
	}
	return nil
}

// Extract decompresses the archive at src into dstDir, overwriting existing
// files. Entries that would escape dstDir are rejected.
func Extract(src, dstDir string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open backup %s: %w", src, err)
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return fmt.Errorf("could not open backup %s: %w", src, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dstDir, err)
	}

	bar := progressbar.Default(-1, "restoring")
	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("could not read backup %s: %w", src, err)
		}

		name := filepath.Clean(filepath.FromSlash(hdr.Name))
		if !filepath.IsLocal(name) {
			return fmt.Errorf("backup %s contains illegal path %q", src, hdr.Name)
		}
		target := filepath.Join(dstDir, name)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, hdr.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf("could not restore %s: %w", target, err)
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("could not restore %s: %w", target, err)
			}
			os.Remove(target)
			if err := os.Symlink(hdr.Linkname, target); err != nil {
				return fmt.Errorf("could not restore %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := extractFile(tr, target, hdr.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		}
		bar.Add(1)
	}
	return nil
}

func extractFile(tr *tar.Reader, target string, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("could not restore %s: %w", target, err)
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("could not restore %s: %w", target, err)
	}
	if _, err := io.Copy(out, tr); err != nil {
		out.Close()
		return fmt.Errorf("could not restore %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not restore %s: %w", target, err)
	}
	// OpenFile applies the umask; enforce the archived mode.
	if err := os.Chmod(target, perm); err != nil {
		return fmt.Errorf("could not restore %s: %w", target, err)
	}
	return nil
}
