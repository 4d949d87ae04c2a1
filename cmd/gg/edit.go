package main

import (
	"goodgame/internal/app"

	"github.com/spf13/cobra"
)

var (
	editName         string
	editRoot         string
	editSaveLocation string
	editExecutable   string
	editRunCommands  []string
)

func init() {
	rootCmd.AddCommand(cmdEdit)

	cmdEdit.Flags().StringVarP(&editName, "name", "n", "", "Rename the game")
	cmdEdit.Flags().StringVar(&editRoot, "root", "", "Change the installation directory")
	cmdEdit.Flags().StringVar(&editSaveLocation, "save-location", "", "Change the save file or directory")
	cmdEdit.Flags().StringVarP(&editExecutable, "executable", "e", "", "Change the game executable")
	cmdEdit.Flags().StringArrayVarP(&editRunCommands, "run", "r", nil, "Replace the per-game run commands (repeatable)")
}

var cmdEdit = &cobra.Command{
	Use:     "edit [name]",
	Aliases: []string{"e"},
	Short:   "Edit a managed game's record",
	Long: `Updates the fields given by flags; everything else keeps its value.
With no flags at all, the record opens as JSON in $EDITOR. Without a
name, the game is inferred from the current directory.`,
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
		g, err := a.Edit(app.EditParams{
			Game:         name,
			Name:         editName,
			Root:         editRoot,
			SaveLocation: editSaveLocation,
			Executable:   editExecutable,
			RunCommands:  editRunCommands,
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
