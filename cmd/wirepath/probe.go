package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wirepath/codable"
)

var probeCmd = &cobra.Command{
	Use:   "probe <schema>",
	Short: "Run a single decode pass and show what it recorded",
	Long: `Run one decode pass over a schema. The leaf request numbered --ordinal
receives the left sentinel; containers nested --depth levels deep read as null.

--path picks the ordinal that activates a dotted coding path instead.

The output shows the activated path, the number of ordinals the pass consumed
and every path it recorded. --dump prints the synthetic instance.

Examples:
  wirepath probe order                                # Activate the first leaf
  wirepath probe order --ordinal 12                   # Activate the items sequence
  wirepath probe order --path customer.address.city   # Find the ordinal of a path
  wirepath probe category --depth 2 --dump            # Show a bounded recursive instance`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: schemaArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ordinal, _ := cmd.Flags().GetInt("ordinal")
		depth, _ := cmd.Flags().GetInt("depth")
		dump, _ := cmd.Flags().GetBool("dump")
		format, _ := cmd.Flags().GetString("format")
		wire, _ := cmd.Flags().GetString("path")

		entry, err := lookupSchema(args[0])
		if err != nil {
			return err
		}

		if depth < 0 {
			depth = reflector.MaxDepth()
		}

		if wire != "" {
			path, err := codable.ParsePath(wire)
			if err != nil {
				return err
			}

			var found bool

			ordinal, found, err = reflector.Activation(entry.Schema, path, depth)
			if err != nil {
				return err
			}

			if !found {
				return fmt.Errorf("no ordinal of %s activates %s within depth %d", entry.Name, path, depth)
			}
		}

		res, err := reflector.Probe(entry.Schema, ordinal, depth)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		activated := color.New(color.Faint).Sprint("none (ordinal exhausted)")
		if res.Active {
			activated = pathColor(res.Activated.String())
		}

		if format == "text" {
			header := fmt.Sprintf("%s %d\n%s %s\n%s %d\n%s\n",
				labelColor("ordinal:"), ordinal,
				labelColor("activated:"), activated,
				labelColor("ordinals:"), res.Ordinals,
				labelColor("recorded:"))

			if _, err := fmt.Fprint(out, header); err != nil {
				return err
			}
		}

		if err := writeProperties(out, format, res.Properties); err != nil {
			return err
		}

		if dump {
			if _, err := fmt.Fprint(out, spew.Sdump(res.Instance)); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	probeCmd.Flags().IntP("ordinal", "o", 0, "Activation ordinal")
	probeCmd.Flags().IntP("depth", "d", -1, "Depth bound of the pass (default: --max-depth)")
	probeCmd.Flags().StringP("path", "p", "", "Activate the ordinal of this dotted coding path")
	probeCmd.Flags().Bool("dump", false, "Dump the synthetic instance")
	probeCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	probeCmd.MarkFlagsMutuallyExclusive("ordinal", "path")
	rootCmd.AddCommand(probeCmd)
}
