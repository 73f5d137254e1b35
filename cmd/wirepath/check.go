package main

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wirepath/internal/diagnostic"
	"wirepath/internal/fixtures"
	"wirepath/sentinel"
)

type diagnosticView struct {
	Severity    string   `yaml:"severity"`
	Code        string   `yaml:"code"`
	Schema      string   `yaml:"schema,omitempty"`
	Path        string   `yaml:"path,omitempty"`
	Message     string   `yaml:"message"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

var severityColor = map[diagnostic.DiagnosticSeverity]func(a ...any) string{
	diagnostic.DiagnosticError:   color.New(color.FgRed, color.Bold).SprintFunc(),
	diagnostic.DiagnosticWarning: color.New(color.FgYellow).SprintFunc(),
	diagnostic.DiagnosticInfo:    color.New(color.FgBlue).SprintFunc(),
}

var checkCmd = &cobra.Command{
	Use:   "check [schema...]",
	Short: "Report schemas and properties that cannot be probed",
	Long: `Probe every schema (or the named ones) with all activation ordinals and
report:
  - errors for schemas whose decode routine requests a type without a
    sentinel pair
  - warnings for sequences of records, whose element fields cannot be located
  - the number of properties and passes per schema

The command fails when any error is reported.

Examples:
  wirepath check                  # Check every schema
  wirepath check order customer   # Check two schemas
  wirepath check --quiet          # Errors and warnings only`,
	ValidArgsFunction: schemaArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		format, _ := cmd.Flags().GetString("format")

		entries := fixtures.Entries()
		if len(args) > 0 {
			entries = entries[:0]

			for _, name := range args {
				entry, err := lookupSchema(name)
				if err != nil {
					return err
				}

				entries = append(entries, entry)
			}
		}

		var diags diagnostic.Diagnostics
		for _, entry := range entries {
			diags.Merge(checkSchema(entry))
		}

		minSeverity := diagnostic.DiagnosticInfo
		if quiet {
			minSeverity = diagnostic.DiagnosticWarning
		}

		shown := diags.AtLeast(minSeverity)

		if err := writeDiagnostics(cmd.OutOrStdout(), format, shown); err != nil {
			return err
		}

		if diags.HasErrors() {
			return fmt.Errorf("check failed with %d error(s):\n%w", len(diags.Errors), diags.Error())
		}

		return nil
	},
}

// writeDiagnostics renders diags as severity-tagged lines with hints, or as a YAML list.
func writeDiagnostics(w io.Writer, format string, diags []diagnostic.Diagnostic) error {
	if format != "yaml" {
		return writeViews(w, format, diags, func(d diagnostic.Diagnostic) string {
			line := fmt.Sprintf("%-7s %s", severityColor[d.Severity](d.Severity.String()), d)
			for _, s := range d.Suggestions {
				line += "\n    hint: " + s
			}

			return line
		})
	}

	views := make([]diagnosticView, 0, len(diags))
	for _, d := range diags {
		views = append(views, diagnosticView{
			Severity:    d.Severity.String(),
			Code:        d.Code,
			Schema:      d.Schema,
			Path:        d.Path,
			Message:     d.Message,
			Suggestions: d.Suggestions,
		})
	}

	return writeViews(w, format, views, nil)
}

// checkSchema probes entry with every ordinal and reports what cannot be located.
func checkSchema(entry fixtures.Entry) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	found, err := discover(entry.Schema)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotReflectable) {
			diags.AddError("not-reflectable", err.Error(), entry.Name, "").
				Suggest("register a sentinel pair with sentinel.Register or sentinel.RegisterFunc")
		} else {
			diags.AddError("probe-failed", err.Error(), entry.Name, "")
		}

		return diags
	}

	catalog := reflector.Catalog()

	for _, p := range found.Properties {
		t := p.Type
		if t.Kind() != reflect.Slice || catalog.Has(t.Elem()) {
			continue
		}

		diags.AddWarning("sequence-of-records",
			fmt.Sprintf("fields of %s elements always decode right sentinels and cannot be located", t.Elem()),
			entry.Name, p.Path.String()).
			Suggest("register a sentinel pair for %s to locate %s as a whole", t.Elem(), p.Path)
	}

	diags.AddInfo("summary", fmt.Sprintf("%d properties over %d passes", len(found.Properties), found.Passes), entry.Name, "")

	return diags
}

func init() {
	checkCmd.Flags().BoolP("quiet", "q", false, "Hide informational diagnostics")
	checkCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	rootCmd.AddCommand(checkCmd)
}
