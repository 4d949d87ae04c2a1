package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"goodgame/internal/archive"
	"goodgame/internal/registry"
)

// BackupParams configures one backup operation.
type BackupParams struct {
	// Game is the name of the game; empty means "infer from the current
	// directory".
	Game string
	// Desc is appended to the backup name.
	Desc string
	// SkipCloud disables the cloud commit/push hooks after archiving.
	SkipCloud bool
}

// Backup archives the game's current save data into its backup directory
// and, unless skipped, runs the cloud commit and push hooks scoped to the
// game root. Returns the path of the written archive; a failing hook aborts
// after the archive is already on disk.
func (a *App) Backup(p BackupParams) (string, error) {
	g, err := a.Games.Resolve(p.Game)
	if err != nil {
		return "", err
	}

	dst, err := a.nextBackupPath(g, p.Desc)
	if err != nil {
		return "", err
	}
	if err := archive.Create(dst, g.SaveLocation); err != nil {
		return "", err
	}
	log.Info().Str("game", g.Name).Str("backup", dst).Msg("backup written")

	if !p.SkipCloud {
		if err := a.cloudCommitCommand(g).Execute("cloud commit", g.Root); err != nil {
			return dst, err
		}
		if err := a.cloudPushCommand(g).Execute("cloud push", g.Root); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// BackupFileName implements the archive naming protocol:
// NAME-NNN[-DESC].tar.zst, with the index zero-padded to three digits.
func BackupFileName(game string, idx int, desc string) string {
	base := fmt.Sprintf("%s-%03d", game, idx)
	if desc != "" {
		base += "-" + desc
	}
	return base + archive.Extension
}

// nextBackupPath names the next archive. The index is the current entry
// count of the backup directory, recomputed at call time: out-of-band
// deletions shift subsequent indices and no gap is ever filled.
func (a *App) nextBackupPath(g *registry.Game, desc string) (string, error) {
	entries, err := os.ReadDir(g.BackupsPath())
	if err != nil {
		return "", fmt.Errorf("could not read backups location %s: %w", g.BackupsPath(), err)
	}
	return filepath.Join(g.BackupsPath(), BackupFileName(g.Name, len(entries), desc)), nil
}
