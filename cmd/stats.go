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
	statsFile string
	statsJSON bool
	statsToon bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for a generated data file",
	Long: `Display statistics about a solar terms data file including:
  - Year coverage and term count
  - Years by data confidence (verified, historical, projected)
  - Terms per calendar month

Examples:
  solarterms stats
  solarterms stats --json
  solarterms stats --toon`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "Data file (default from config output.path)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsToon, "toon", false, "Output in LLM-friendly toon format")
}

type tableStats struct {
	Version      string         `json:"version"`
	LastUpdated  string         `json:"last_updated"`
	StartYear    int            `json:"start_year"`
	EndYear      int            `json:"end_year"`
	TotalYears   int            `json:"total_years"`
	TotalEntries int            `json:"total_entries"`
	ByConfidence map[string]int `json:"by_confidence"`
	ByMonth      []monthCount   `json:"by_month"`
}

type monthCount struct {
	Month int `json:"month"`
	Major int `json:"major"`
	Minor int `json:"minor"`
}

func runStats(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(resolveDataFile(statsFile))
	if err != nil {
		return err
	}

	stats := collectStats(doc)

	if statsJSON {
		output, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if statsToon {
		output, err := gotoon.Encode(stats)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Println("Solar Terms Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	fmt.Printf("Version:       %s\n", stats.Version)
	fmt.Printf("Last Updated:  %s\n", stats.LastUpdated)
	fmt.Printf("Coverage:      %d to %d (%d years)\n", stats.StartYear, stats.EndYear, stats.TotalYears)
	fmt.Printf("Entries:       %d\n", stats.TotalEntries)
	fmt.Println()

	fmt.Println("By Confidence:")
	for _, level := range []solarterms.DataConfidence{
		solarterms.ConfidenceVerified,
		solarterms.ConfidenceHistorical,
		solarterms.ConfidenceProjected,
	} {
		count := stats.ByConfidence[string(level)]
		percentage := 0.0
		if stats.TotalYears > 0 {
			percentage = float64(count) / float64(stats.TotalYears) * 100
		}
		fmt.Printf("  %-12s %4d  (%.1f%%)\n", level, count, percentage)
	}
	fmt.Println()

	fmt.Println("Terms per Month:")
	for _, mc := range stats.ByMonth {
		bar := ""
		for j := 0; j < mc.Major; j++ {
			bar += "█"
		}
		for j := 0; j < mc.Minor; j++ {
			bar += "░"
		}
		fmt.Printf("  %2d  major %d  minor %d  %s\n", mc.Month, mc.Major, mc.Minor, bar)
	}

	return nil
}

func collectStats(doc *models.Document) *tableStats {
	cov := doc.Metadata.Coverage
	stats := &tableStats{
		Version:      doc.Version,
		LastUpdated:  doc.Metadata.LastUpdated,
		StartYear:    cov.StartYear,
		EndYear:      cov.EndYear,
		TotalYears:   len(doc.Data),
		ByConfidence: make(map[string]int),
	}

	for yearKey, record := range doc.Data {
		stats.TotalEntries += len(record)
		if year, err := strconv.Atoi(yearKey); err == nil {
			stats.ByConfidence[string(solarterms.Confidence(year))]++
		}
	}

	// Month distribution is the same every year, so it comes from the term table
	for month := 1; month <= 12; month++ {
		mc := monthCount{Month: month}
		for _, t := range solarterms.Terms() {
			if t.Month != month {
				continue
			}
			if t.IsMajor() {
				mc.Major++
			} else {
				mc.Minor++
			}
		}
		stats.ByMonth = append(stats.ByMonth, mc)
	}

	return stats
}
