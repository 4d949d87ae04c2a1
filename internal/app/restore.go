package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"goodgame/internal/archive"
	"goodgame/internal/registry"
)

// RestoreParams configures one restore operation.
type RestoreParams struct {
	// Game is the exact name of the game.
	Game string
	// Backup is the file name of the archive to restore, as listed in the
	// game's backup directory.
	Backup string
	// SkipCloud disables the cloud commit/push hooks after extraction.
	SkipCloud bool
}

// Restore extracts the named backup over the game's save location. The
// current save state is snapshotted first, so a restore never destroys
// anything: the snapshot's description names the index of the backup that
// replaced it.
func (a *App) Restore(p RestoreParams) error {
	g, err := a.Games.GetByName(p.Game)
	if err != nil {
		return err
	}

	target := filepath.Join(g.BackupsPath(), p.Backup)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("the backup %q of game %q does not exist: %w", p.Backup, g.Name, registry.ErrNotFound)
	}

	desc := "replaced-with-" + backupIndex(p.Backup)
	if _, err := a.Backup(BackupParams{Game: g.Name, Desc: desc, SkipCloud: true}); err != nil {
		return fmt.Errorf("could not snapshot the current save before restoring: %w", err)
	}

	if err := archive.Extract(target, extractDir(g.SaveLocation)); err != nil {
		return fmt.Errorf("could not restore %s into %s: %w", target, g.SaveLocation, err)
	}
	log.Info().Str("game", g.Name).Str("backup", p.Backup).Msg("restored")

	if !p.SkipCloud {
		if err := a.cloudCommitCommand(g).Execute("cloud commit", g.Root); err != nil {
			return err
		}
		if err := a.cloudPushCommand(g).Execute("cloud push", g.Root); err != nil {
			return err
		}
	}
	return nil
}

// Backups lists the entries of the game's backup directory.
func (a *App) Backups(name string) ([]string, error) {
	g, err := a.Games.GetByName(name)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(g.BackupsPath())
	if err != nil {
		return nil, fmt.Errorf("could not read backups location %s: %w", g.BackupsPath(), err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// backupIndex extracts the numeric index from a backup file name: the
// second dash-separated component, stripped of trailing non-digits.
// "Foo-001-pre-patch.tar.zst" yields "001".
func backupIndex(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimRightFunc(parts[1], func(r rune) bool {
		return r < '0' || r > '9'
	})
}

// extractDir picks the directory an archive is extracted into. Single-file
// saves are archived by base name, so their contents land next to the file.
func extractDir(saveLocation string) string {
	if info, err := os.Stat(saveLocation); err == nil && !info.IsDir() {
		return filepath.Dir(saveLocation)
	}
	return saveLocation
}
