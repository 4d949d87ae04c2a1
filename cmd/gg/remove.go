package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdRemove)
}

var cmdRemove = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete", "del"},
	Short:   "Stop managing a game",
	Long: `Drops the game from the registry. Backups, the save data and the
gg-save-loc symlink stay on disk untouched.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: gameNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		g, err := a.Remove(args[0])
		if err != nil {
			return err
		}
		if err := a.Games.Store(); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "No longer managing %s\n", g.Name)
		return nil
	},
}
