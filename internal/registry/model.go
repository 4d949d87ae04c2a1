package registry

import "path/filepath"

// Game holds one managed game entry: its identity, the paths the backup
// engine works on, and optional launch metadata.
type Game struct {
	Name         string `json:"name"`
	Root         string `json:"root"`
	SaveLocation string `json:"save_location"`
	// Launch metadata, consumed by the run workflow and by variable
	// substitution in command templates.
	Executable      string      `json:"executable,omitempty"`
	ExecutableArgs  []string    `json:"executable_args,omitempty"`
	EnvironmentVars [][2]string `json:"environment_vars,omitempty"`
	// Per-game override of the global run template. $RUN inside an entry is
	// replaced with the global run commands.
	RunCommands []string `json:"run_commands,omitempty"`
}

const (
	backupsDirName  = "gg-saves"
	saveSymlinkName = "gg-save-loc"
)

// BackupsPath is the directory all backups of this game live in.
func (g *Game) BackupsPath() string {
	return filepath.Join(g.Root, backupsDirName)
}

// SaveSymlinkPath is the convenience symlink inside the root that points at
// the save location.
func (g *Game) SaveSymlinkPath() string {
	return filepath.Join(g.Root, saveSymlinkName)
}

// Same reports whether both entries identify the same game. A collision on
// any one of name, root or save location counts: the three keys are all
// unique across the registry.
func (g *Game) Same(other *Game) bool {
	return g.Name == other.Name ||
		g.Root == other.Root ||
		g.SaveLocation == other.SaveLocation
}

// merge overwrites g with every field explicitly set on in. The name is
// never touched, so the position of g in a name-sorted registry is stable.
func (g *Game) merge(in Game) {
	if in.Root != "" {
		g.Root = in.Root
	}
	if in.SaveLocation != "" {
		g.SaveLocation = in.SaveLocation
	}
	if in.Executable != "" {
		g.Executable = in.Executable
	}
	if in.ExecutableArgs != nil {
		g.ExecutableArgs = in.ExecutableArgs
	}
	if in.EnvironmentVars != nil {
		g.EnvironmentVars = in.EnvironmentVars
	}
	if in.RunCommands != nil {
		g.RunCommands = in.RunCommands
	}
}
