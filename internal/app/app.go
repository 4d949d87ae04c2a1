// Package app exposes the high-level operations the CLI wires to: managing
// the game registry and backing up, restoring and running games.
package app

import (
	"strings"

	"goodgame/internal/config"
	"goodgame/internal/hook"
	"goodgame/internal/registry"
)

// App bundles the loaded registry and configuration for one invocation.
// Mutating operations leave the registry dirty; the caller stores it.
type App struct {
	Games  *registry.Games
	Config config.Config
}

// New constructs the operation facade.
func New(games *registry.Games, cfg config.Config) *App {
	return &App{Games: games, Config: cfg}
}

func (a *App) cloudInitCommand(g *registry.Game) *hook.Command {
	return hook.Build(a.Config.Shell, a.Config.Backup.CloudInitCommands, g)
}

func (a *App) cloudCommitCommand(g *registry.Game) *hook.Command {
	return hook.Build(a.Config.Shell, a.Config.Backup.CloudCommitCommands, g)
}

func (a *App) cloudPushCommand(g *registry.Game) *hook.Command {
	return hook.Build(a.Config.Shell, a.Config.Backup.CloudPushCommands, g)
}

// runCommand assembles the run invocation for a game. A per-game override
// replaces the global template, with $RUN inside any override entry spliced
// with the global commands joined by &&.
func (a *App) runCommand(g *registry.Game) *hook.Command {
	cmds := a.Config.Run.Commands
	if g.RunCommands != nil {
		global := strings.Join(a.Config.Run.Commands, "&&")
		cmds = make([]string, len(g.RunCommands))
		for i, c := range g.RunCommands {
			cmds[i] = strings.Replace(c, "$RUN", global, 1)
		}
	}
	return hook.Build(a.Config.Shell, cmds, g)
}

// List returns the registry entries in name order.
func (a *App) List() []registry.Game {
	return a.Games.Games()
}

// Remove deletes the named game from the registry and returns it.
func (a *App) Remove(name string) (registry.Game, error) {
	return a.Games.Delete(name)
}
