package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/solarterms/internal/models"
	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/spf13/cobra"
)

var (
	termsCategory string
	termsJSON     bool
	termsToon     bool
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "List the 24 solar term definitions",
	Long: `List the solar term definitions used to build the table.

Major terms mark the boundaries of the 12 solar months; minor terms fall
between them.

Examples:
  solarterms terms
  solarterms terms --category major
  solarterms terms --json`,
	Args: cobra.NoArgs,
	RunE: runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)

	termsCmd.Flags().StringVar(&termsCategory, "category", "", "Filter by category: major|minor")
	termsCmd.Flags().BoolVar(&termsJSON, "json", false, "Output as JSON")
	termsCmd.Flags().BoolVar(&termsToon, "toon", false, "Output in LLM-friendly toon format")
}

func runTerms(cmd *cobra.Command, args []string) error {
	groups := models.SolarTermGroups{}

	switch models.TermCategory(termsCategory) {
	case "":
		groups.Major = solarterms.MajorTerms()
		groups.Minor = solarterms.MinorTerms()
	case models.CategoryMajor:
		groups.Major = solarterms.MajorTerms()
	case models.CategoryMinor:
		groups.Minor = solarterms.MinorTerms()
	default:
		return fmt.Errorf("invalid category: %s (must be: major, minor)", termsCategory)
	}

	if termsJSON {
		output, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if termsToon {
		output, err := gotoon.Encode(groups)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(groups.Major) > 0 {
		fmt.Println("Major Terms (month boundaries)")
		fmt.Println("──────────────────────────────")
		for _, t := range groups.Major {
			fmt.Printf("  %2d  %-12s %-22s %-22s %s\n", t.SolarMonthNumber, t.Key, t.Name, t.EnglishName, t.Typical)
		}
		fmt.Println()
	}

	if len(groups.Minor) > 0 {
		fmt.Println("Minor Terms")
		fmt.Println("───────────")
		for _, t := range groups.Minor {
			fmt.Printf("      %-12s %-22s %-22s %s\n", t.Key, t.Name, t.EnglishName, t.Typical)
		}
	}

	return nil
}
