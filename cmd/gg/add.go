package main

import (
	"goodgame/internal/app"

	"github.com/spf13/cobra"
)

var (
	addExecutable    string
	addRunCommands   []string
	addSkipCloud     bool
	addSkipCloudInit bool
)

func init() {
	rootCmd.AddCommand(cmdAdd)

	cmdAdd.Flags().StringVarP(&addExecutable, "executable", "e", "", "Path of the game executable, relative to the root")
	cmdAdd.Flags().StringArrayVarP(&addRunCommands, "run", "r", nil, "Per-game run command (repeatable); $RUN splices in the global commands")
	cmdAdd.Flags().BoolVarP(&addSkipCloud, "skip-cloud", "s", false, "Skip every cloud saving feature for this operation")
	cmdAdd.Flags().BoolVar(&addSkipCloudInit, "skip-init", false, "Skip only the cloud saving initialization")
}

var cmdAdd = &cobra.Command{
	Use:     "add <name> <root> <save-location>",
	Aliases: []string{"a", "init"},
	Short:   "Start managing a game",
	Long: `Registers a game under the given name. The root is the installation
directory; the save location is the file or directory holding the save
data. Both are resolved to absolute, symlink-free paths before they are
stored, so relative paths work fine.`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: cobra.NoFileCompletions,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		g, err := a.Add(app.AddParams{
			Name:          args[0],
			Root:          args[1],
			SaveLocation:  args[2],
			Executable:    addExecutable,
			RunCommands:   addRunCommands,
			SkipCloud:     addSkipCloud,
			SkipCloudInit: addSkipCloudInit,
		})
		if err != nil {
			return err
		}
		if err := a.Games.Store(); err != nil {
			return err
		}
		return printJSON(g)
	},
}
