package main

import (
	"encoding/json"
	"os"
	"runtime/debug"
	"strings"

	"goodgame/internal/app"
	"goodgame/internal/config"
	"goodgame/internal/registry"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gg [command]",
	Short: "gg: good game save manager",
	Long:  `gg keeps a registry of your games and backs up, restores and syncs their save data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	if info, ok := debug.ReadBuildInfo(); ok {
		rootCmd.Version = info.Main.Version
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadApp reads the registry and configuration once per invocation.
func loadApp() (*app.App, error) {
	games, err := registry.Load()
	if err != nil {
		return nil, err
	}
	return app.New(games, config.Load()), nil
}

// printJSON writes v to stdout as indented JSON, the way records are
// shown to the user everywhere in gg.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// gameNames completes the first positional argument of verbs that take a
// game name.
func gameNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	games, err := registry.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var names []string
	for _, n := range games.Names() {
		if strings.HasPrefix(strings.ToLower(n), strings.ToLower(toComplete)) {
			names = append(names, n)
		}
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
