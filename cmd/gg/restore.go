package main

import (
	"fmt"
	"os"

	"goodgame/internal/app"
	"goodgame/internal/tui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var restoreSkipCloud bool

func init() {
	rootCmd.AddCommand(cmdRestore)

	cmdRestore.Flags().BoolVarP(&restoreSkipCloud, "skip-cloud", "s", false, "Skip the cloud commit and push after restoring")
}

var cmdRestore = &cobra.Command{
	Use:     "restore <name> [backup]",
	Aliases: []string{"rs"},
	Short:   "Restore a backup over the current save data",
	Long: `Replaces the save location with the contents of the given backup. The
current save data is snapshotted first, so a restore is always
reversible. Without a backup argument an interactive picker is shown.`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return gameNames(cmd, args, toComplete)
		}
		if len(args) == 1 {
			a, err := loadApp()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			backups, err := a.Backups(args[0])
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return backups, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		var backup string
		if len(args) == 2 {
			backup = args[1]
		} else {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("no backup given and stdout is not a terminal")
			}
			backups, err := a.Backups(args[0])
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				return fmt.Errorf("the game %q has no backups", args[0])
			}
			choice, ok, err := tui.Pick("Restore "+args[0]+" from", backups)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			backup = choice
		}

		if err := a.Restore(app.RestoreParams{Game: args[0], Backup: backup, SkipCloud: restoreSkipCloud}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Restored %s from %s\n", args[0], backup)
		return nil
	},
}
