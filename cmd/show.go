package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/alpkeskin/gotoon"
	"github.com/pders01/solarterms/internal/models"
	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/spf13/cobra"
)

var (
	showFile string
	showJSON bool
	showToon bool
)

var showCmd = &cobra.Command{
	Use:   "show <year>",
	Short: "Show the solar term dates for a year",
	Long: `Display all 24 solar term dates stored for a year in the data file.

Examples:
  solarterms show 2024
  solarterms show 1985 --json
  solarterms show 2050 --toon --file solar-terms.json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "Data file (default from config output.path)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showToon, "toon", false, "Output in LLM-friendly toon format")
}

type yearTerm struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
	Category    string `json:"category"`
	SolarMonth  int    `json:"solarMonth,omitempty"`
	Date        string `json:"date"`
}

type yearView struct {
	Year       int        `json:"year"`
	Confidence string     `json:"confidence"`
	Warning    string     `json:"warning,omitempty"`
	Terms      []yearTerm `json:"terms"`
}

func runShow(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s", args[0])
	}

	path := resolveDataFile(showFile)
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	record, ok := doc.Data[models.YearKey(year)]
	if !ok {
		cov := doc.Metadata.Coverage
		return fmt.Errorf("year %d is not in %s (covers %d-%d)", year, path, cov.StartYear, cov.EndYear)
	}

	if showJSON {
		output, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	view := buildYearView(year, record)

	if showToon {
		output, err := gotoon.Encode(view)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Printf("Solar Terms %s\n", models.YearKey(year))
	fmt.Println("━━━━━━━━━━━━━━━━")
	fmt.Println()

	for _, t := range view.Terms {
		month := ""
		if t.SolarMonth > 0 {
			month = fmt.Sprintf("month %d", t.SolarMonth)
		}
		fmt.Printf("  %s  %-12s %-22s %s\n", t.Date, t.Key, t.Name, month)
	}

	if view.Warning != "" {
		fmt.Printf("\nWarning: %s\n", view.Warning)
	}

	return nil
}

func buildYearView(year int, record models.YearRecord) yearView {
	view := yearView{
		Year:       year,
		Confidence: string(solarterms.Confidence(year)),
		Warning:    solarterms.ConfidenceWarning(year),
	}

	for _, td := range record {
		t := yearTerm{
			Key:  td.Key,
			Date: shortDate(td.Timestamp),
		}
		if def, ok := solarterms.Lookup(td.Key); ok {
			t.Name = def.Name
			t.EnglishName = def.EnglishName
			t.Category = string(def.Category)
			t.SolarMonth = def.SolarMonthNumber
		}
		view.Terms = append(view.Terms, t)
	}

	return view
}
