package main

import (
	"goodgame/internal/app"

	"github.com/spf13/cobra"
)

var openSave bool

func init() {
	rootCmd.AddCommand(cmdOpen)

	cmdOpen.Flags().BoolVarP(&openSave, "save", "s", false, "Open the save location instead of the root")
}

var cmdOpen = &cobra.Command{
	Use:               "open <name>",
	Aliases:           []string{"o"},
	Short:             "Open a game's directory in the file manager",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: gameNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		return a.Open(app.OpenParams{Game: args[0], Save: openSave})
	},
}
