package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/spf13/cobra"
)

var (
	monthFile string
	monthJSON bool
)

var monthCmd = &cobra.Command{
	Use:   "month <date>",
	Short: "Find the solar month a date falls into",
	Long: `Classify a date into its solar month using the generated data file.

A date without a time is read as 12:00 UTC. Dates before Li Chun belong
to the previous solar year.

Examples:
  solarterms month 1985-11-08
  solarterms month 2024-02-04T08:00:00Z --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMonth,
}

func init() {
	rootCmd.AddCommand(monthCmd)

	monthCmd.Flags().StringVarP(&monthFile, "file", "f", "", "Data file (default from config output.path)")
	monthCmd.Flags().BoolVar(&monthJSON, "json", false, "Output as JSON")
}

func runMonth(cmd *cobra.Command, args []string) error {
	at, err := solarterms.ParseDate(args[0])
	if err != nil {
		return err
	}

	doc, err := loadDocument(resolveDataFile(monthFile))
	if err != nil {
		return err
	}

	month, err := solarterms.SolarMonthFor(doc, at)
	if err != nil {
		return fmt.Errorf("failed to find solar month: %w", err)
	}

	if monthJSON {
		output, err := json.MarshalIndent(month, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Date:        %s\n", at.Format("2006-01-02 15:04 MST"))
	fmt.Printf("Solar year:  %d\n", month.SolarYear)
	fmt.Printf("Solar month: %d\n", month.Month)
	fmt.Printf("Started by:  %s, %s\n", month.Term.Name, month.Term.EnglishName)
	fmt.Printf("Period:      %s to %s\n",
		month.Start.Format("2006-01-02"),
		month.End.Format("2006-01-02"))

	if warning := solarterms.ConfidenceWarning(month.SolarYear); warning != "" {
		fmt.Printf("\nWarning: %s\n", warning)
	}

	return nil
}
