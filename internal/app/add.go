package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"goodgame/internal/registry"
)

// AddParams configures game registration.
type AddParams struct {
	Name         string
	Root         string
	SaveLocation string
	Executable   string
	RunCommands  []string
	// SkipCloud disables all cloud features; SkipCloudInit only the
	// initialization hook.
	SkipCloud     bool
	SkipCloudInit bool
}

// Add starts managing a game: canonicalizes and validates its paths,
// rejects collisions with already-managed entries, prepares the backup
// directory and the save-location symlink inside the root, and runs the
// cloud-init hook. The caller stores the registry afterwards.
func (a *App) Add(p AddParams) (registry.Game, error) {
	root, err := canonicalize(p.Root)
	if err != nil {
		return registry.Game{}, fmt.Errorf("failed to get root %q: %w", p.Root, err)
	}
	save, err := canonicalize(p.SaveLocation)
	if err != nil {
		return registry.Game{}, fmt.Errorf("failed to get save location %q: %w", p.SaveLocation, err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return registry.Game{}, fmt.Errorf("the root %q must be a directory", root)
	}
	if root == save {
		return registry.Game{}, fmt.Errorf("the root and save locations can't be the same")
	}

	// The OR identity rule would silently merge on push; registration
	// checks all three keys explicitly instead.
	if _, err := a.Games.GetByName(p.Name); err == nil {
		return registry.Game{}, fmt.Errorf("a game with the name %q %w", p.Name, registry.ErrDuplicate)
	}
	if g := a.Games.GetByRoot(root); g != nil {
		return registry.Game{}, fmt.Errorf("a game with the root %q %w", root, registry.ErrDuplicate)
	}
	if g := a.Games.GetBySave(save); g != nil {
		return registry.Game{}, fmt.Errorf("a game with the save location %q %w", save, registry.ErrDuplicate)
	}

	g := registry.Game{
		Name:         p.Name,
		Root:         root,
		SaveLocation: save,
		Executable:   p.Executable,
		RunCommands:  p.RunCommands,
	}

	if link := g.SaveSymlinkPath(); !exists(link) {
		if err := os.Symlink(save, link); err != nil {
			return registry.Game{}, fmt.Errorf("could not create symlink from %s to %s: %w", save, link, err)
		}
	}
	if err := os.MkdirAll(g.BackupsPath(), 0o755); err != nil {
		return registry.Game{}, fmt.Errorf("could not create backups location %s: %w", g.BackupsPath(), err)
	}

	if !p.SkipCloud && !p.SkipCloudInit {
		if err := a.cloudInitCommand(&g).Execute("cloud init", g.Root); err != nil {
			return registry.Game{}, err
		}
	}

	res := a.Games.Push(g)
	log.Debug().Str("game", res.Name).Str("root", res.Root).Msg("registered")
	return res, nil
}

// canonicalize resolves the path to an absolute one with symlinks
// evaluated; the path must exist.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
