package main

import (
	"fmt"
	"os"

	"goodgame/internal/app"

	"github.com/spf13/cobra"
)

var runSkipCloud bool

func init() {
	rootCmd.AddCommand(cmdRun)

	cmdRun.Flags().BoolVarP(&runSkipCloud, "skip-cloud", "s", false, "Skip the cloud sync of the post-run backup")
}

var cmdRun = &cobra.Command{
	Use:     "run [name]",
	Aliases: []string{"r"},
	Short:   "Run a game and back up its save data afterwards",
	Long: `Executes the run commands inside the game's root and, once the game
exits, takes a backup of the save data. Without a name, the game is
inferred from the current directory.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: gameNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		path, err := a.Run(app.RunParams{Game: name, SkipCloud: runSkipCloud})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Backup written to %s\n", path)
		return nil
	},
}
