package app

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// RunParams configures the run workflow.
type RunParams struct {
	// Game is the name of the game; empty means "infer from the current
	// directory".
	Game string
	// SkipCloud is forwarded to the post-run backup.
	SkipCloud bool
}

// Run executes the game's run command and then takes an implicit backup of
// the save data, treating the end of a play session as a checkpoint.
// Returns the path of the post-run archive.
func (a *App) Run(p RunParams) (string, error) {
	g, err := a.Games.Resolve(p.Game)
	if err != nil {
		return "", err
	}
	if err := a.runCommand(g).Execute("run", g.Root); err != nil {
		return "", err
	}
	return a.Backup(BackupParams{Game: g.Name, SkipCloud: p.SkipCloud})
}

// OpenParams configures the open workflow.
type OpenParams struct {
	Game string
	// Save opens the save location instead of the root.
	Save bool
}

// Open spawns the system file opener on the game's root (or save location)
// and returns without waiting for it.
func (a *App) Open(p OpenParams) error {
	g, err := a.Games.GetByName(p.Game)
	if err != nil {
		return err
	}
	dir := g.Root
	if p.Save {
		dir = g.SaveLocation
	}

	cmd := exec.Command("xdg-open", dir)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not open %s: %w", dir, err)
	}
	log.Debug().Str("game", g.Name).Str("dir", dir).Msg("opened")
	return cmd.Process.Release()
}
