package main

import (
	"fmt"
	"os"

	"goodgame/internal/app"

	"github.com/spf13/cobra"
)

var (
	backupDesc      string
	backupSkipCloud bool
)

func init() {
	rootCmd.AddCommand(cmdBackup)

	cmdBackup.Flags().StringVarP(&backupDesc, "desc", "d", "", "Short description appended to the backup file name")
	cmdBackup.Flags().BoolVarP(&backupSkipCloud, "skip-cloud", "s", false, "Skip the cloud commit and push after archiving")
}

var cmdBackup = &cobra.Command{
	Use:     "backup [name]",
	Aliases: []string{"b", "bk"},
	Short:   "Back up a game's save data",
	Long: `Archives the save location into the game's gg-saves directory as a
numbered tar.zst file. Without a name, the game is inferred from the
current directory.`,
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
		path, err := a.Backup(app.BackupParams{Game: name, Desc: backupDesc, SkipCloud: backupSkipCloud})
		if path != "" {
			fmt.Fprintf(os.Stdout, "Backup written to %s\n", path)
		}
		return err
	},
}
