// Package main provides the CLI entrypoint for wirepath.
//
// wirepath discovers the coding paths of decodable Go types by probing their
// decode routines with sentinel values:
//   - list: enumerates the properties of a schema at a nesting depth
//   - locate: resolves a Go field path to its coding path
//   - find: ranks coding paths by similarity to a name
//   - probe: runs and shows a single decode pass
//   - check: reports schemas and properties that cannot be probed
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wirepath/internal/fixtures"
	"wirepath/options"
	"wirepath/reflection"
	"wirepath/sentinel"
)

var reflector *reflection.Reflector

var rootCmd = &cobra.Command{
	Use:   "wirepath",
	Short: "Discover the wire paths of decodable types",
	Long: `wirepath maps Go properties to the coding paths their decode routines read.

It never parses real data: each schema is decoded from synthetic sentinel
values and the paths it requests are recorded.

Schemas: ` + strings.Join(fixtures.Names(), ", "),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		traceNames, _ := cmd.Flags().GetString("trace")
		maxDepth, _ := cmd.Flags().GetInt("max-depth")

		trace, ok := options.ParseTrace(strings.Split(traceNames, ",")...)
		if !ok {
			return fmt.Errorf("unknown trace events %q (want passes, cache, results, all or none)", traceNames)
		}

		catalog := sentinel.New()
		if err := fixtures.Register(catalog); err != nil {
			return err
		}

		cfg := reflection.DefaultConfig()
		cfg.MaxDepth = maxDepth
		cfg.Catalog = catalog
		cfg.Trace = trace

		if verbose {
			cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		}

		var err error

		reflector, err = reflection.New(cfg)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log engine events to stderr")
	rootCmd.PersistentFlags().String("trace", "results", "Comma-separated engine events to log: passes, cache, results, all, none")
	rootCmd.PersistentFlags().Int("max-depth", reflection.DefaultMaxDepth, "Depth bound for recursive schemas")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}

// lookupSchema resolves a fixture name to its entry.
func lookupSchema(name string) (fixtures.Entry, error) {
	entry, ok := fixtures.Lookup(name)
	if !ok {
		return fixtures.Entry{}, fmt.Errorf("unknown schema %q (known: %s)", name, strings.Join(fixtures.Names(), ", "))
	}

	return entry, nil
}

var schemaArgs = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return fixtures.Names(), cobra.ShellCompDirectiveNoFileComp
}
