package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <schema>",
	Short: "List the properties of a schema at a nesting depth",
	Long: `List the coding paths and declared types a schema decodes at one nesting
depth. Depth 0 lists the root's own keys, depth 1 their children, and so on.

Optional keys are reported with a pointer type. Fields of sequence elements are
not listed: a single pass decodes sequences empty.

Examples:
  wirepath list order                 # Root keys of an order
  wirepath list order --depth 2       # customer.address.*
  wirepath list customer -f yaml      # YAML output`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: schemaArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		depth, _ := cmd.Flags().GetInt("depth")
		format, _ := cmd.Flags().GetString("format")

		entry, err := lookupSchema(args[0])
		if err != nil {
			return err
		}

		props, err := reflector.Enumerate(entry.Schema, depth)
		if err != nil {
			return err
		}

		return writeProperties(cmd.OutOrStdout(), format, props)
	},
}

func init() {
	listCmd.Flags().IntP("depth", "d", 0, "Nesting depth to list")
	listCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	rootCmd.AddCommand(listCmd)
}
