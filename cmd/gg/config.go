package main

import (
	"goodgame/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cmdConfig)
}

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Show the loaded configuration",
	Long:  `Prints the configuration read from ` + config.Path + `. Missing or broken files show up as the defaults.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(config.Load())
	},
}
