package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"wirepath/internal/match"
)

type matchView struct {
	Path  string  `yaml:"path"`
	Type  string  `yaml:"type"`
	Score float64 `yaml:"score"`
}

var findCmd = &cobra.Command{
	Use:   "find <schema> <name>",
	Short: "Rank coding paths by similarity to a name",
	Long: `Find the coding paths whose last key resembles a name. Keys are compared
after case folding and separator removal, so "postalCode" finds
"postal_code". Element fields of sequences are included.

Examples:
  wirepath find order city
  wirepath find order productID --limit 3
  wirepath find customer createdAt --min-score 0.9`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: schemaArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		minScore, _ := cmd.Flags().GetFloat64("min-score")
		format, _ := cmd.Flags().GetString("format")

		entry, err := lookupSchema(args[0])
		if err != nil {
			return err
		}

		found, err := discover(entry.Schema)
		if err != nil {
			return err
		}

		types := make(map[string]string, len(found.Properties))
		candidates := make(match.CandidateList, 0, len(found.Properties))

		for _, p := range found.Properties {
			if len(p.Path) == 0 {
				continue
			}

			key := p.Path[len(p.Path)-1]
			path := p.Path.String()

			types[path] = p.Type.String()
			candidates = append(candidates, match.Candidate{
				Name:       path,
				Score:      match.Score(args[1], key),
				Normalized: match.NormalizeIdent(key),
			})
		}

		sort.Sort(candidates)

		var views []matchView
		for _, c := range candidates.AboveThreshold(minScore).Top(limit) {
			views = append(views, matchView{Path: c.Name, Type: types[c.Name], Score: c.Score})
		}

		if len(views) == 0 {
			if best := candidates.Best(); best != nil {
				return fmt.Errorf("no coding path of %s resembles %q (closest: %s at %.2f)", entry.Name, args[1], best.Name, best.Score)
			}

			return fmt.Errorf("no coding path of %s resembles %q", entry.Name, args[1])
		}

		return writeViews(cmd.OutOrStdout(), format, views, func(v matchView) string {
			return fmt.Sprintf("%s  %s: %s", labelColor(strconv.FormatFloat(v.Score, 'f', 2, 64)), pathColor(v.Path), typeColor(v.Type))
		})
	},
}

func init() {
	findCmd.Flags().IntP("limit", "n", 5, "Maximum number of matches")
	findCmd.Flags().Float64("min-score", match.DefaultMinScore, "Minimum similarity (0-1)")
	findCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	rootCmd.AddCommand(findCmd)
}
