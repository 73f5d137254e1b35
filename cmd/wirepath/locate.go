package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wirepath/reflection"
)

var locateCmd = &cobra.Command{
	Use:   "locate <schema> <field>",
	Short: "Resolve a Go field path to its coding path",
	Long: `Resolve a Go field path such as Customer.Address.City to the coding path the
schema's decode routine reads it from. "[]" selects the first element of a
slice, e.g. Items[].Quantity.

Examples:
  wirepath locate order Customer.Address.City
  wirepath locate shipment Transit -f yaml`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: schemaArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		entry, err := lookupSchema(args[0])
		if err != nil {
			return err
		}

		prop, err := entry.FieldByName(args[1])
		if err != nil {
			return err
		}

		located, found, err := reflector.Locate(prop)
		if err != nil {
			return err
		}

		if !found {
			return fmt.Errorf("%s is not reachable within depth %d", prop, reflector.MaxDepth())
		}

		return writeProperties(cmd.OutOrStdout(), format, []reflection.ReflectedProperty{located})
	},
}

func init() {
	locateCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	rootCmd.AddCommand(locateCmd)
}
