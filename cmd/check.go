package cmd

import (
	"fmt"

	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a generated data file",
	Long: `Check a solar terms data file against the table invariants:
  - every year has exactly 24 terms, no duplicates
  - every timestamp falls in its own year
  - coverage matches the years present
  - 12 major and 12 minor term definitions covering all 24 keys

Examples:
  solarterms check
  solarterms check src/lib/data/solar-terms.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	path = resolveDataFile(path)

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	if err := solarterms.Validate(doc); err != nil {
		return fmt.Errorf("%s failed validation: %w", path, err)
	}

	cov := doc.Metadata.Coverage
	fmt.Printf("✓ %s is valid\n", path)
	fmt.Printf("  Version:  %s\n", doc.Version)
	fmt.Printf("  Coverage: %d-%d (%d years, %d terms each)\n",
		cov.StartYear, cov.EndYear, cov.TotalYears, solarterms.TermCount)
	fmt.Printf("  Updated:  %s\n", doc.Metadata.LastUpdated)

	return nil
}
