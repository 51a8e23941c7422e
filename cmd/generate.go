package cmd

import (
	"fmt"

	"github.com/pders01/solarterms/internal/config"
	"github.com/pders01/solarterms/internal/logger"
	"github.com/pders01/solarterms/internal/solarterms"
	"github.com/pders01/solarterms/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	genStart  int
	genEnd    int
	genOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the solar terms data file",
	Long: `Build the solar terms table for an inclusive year range and write it as JSON.

Each year maps all 24 term keys to YYYY-MM-DDT12:00:00Z, January terms
first. The range and output path come from flags, then config, then the
defaults (1900-2100, solar-terms.json). An existing file is replaced.

Examples:
  solarterms generate
  solarterms generate --start 2000 --end 2030
  solarterms generate --output src/lib/data/solar-terms.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&genStart, "start", 0, "First year to generate (default from config, 1900)")
	generateCmd.Flags().IntVar(&genEnd, "end", 0, "Last year to generate, inclusive (default from config, 2100)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output file (default from config, solar-terms.json)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start := genStart
	if start == 0 {
		start = config.GetStartYear()
	}
	end := genEnd
	if end == 0 {
		end = config.GetEndYear()
	}
	output := genOutput
	if output == "" {
		output = config.GetOutputPath()
	}
	if output == "" {
		return fmt.Errorf("output path is required (use --output or set output.path)")
	}

	fmt.Printf("Generating solar terms data (%d-%d)...\n", start, end)

	doc, err := solarterms.NewBuilder(appClock, nil).Build(start, end)
	if err != nil {
		return fmt.Errorf("failed to build solar terms table: %w", err)
	}

	if err := solarterms.Validate(doc); err != nil {
		return fmt.Errorf("generated table is inconsistent: %w", err)
	}

	size, err := storage.WriteDocument(appFs, output, doc)
	if err != nil {
		return fmt.Errorf("failed to save solar terms data: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"path":  output,
		"bytes": size,
		"years": doc.Metadata.Coverage.TotalYears,
	}).Debug("Solar terms data written")

	p := message.NewPrinter(language.English)
	fmt.Printf("✓ Generated data for %d years\n", doc.Metadata.Coverage.TotalYears)
	fmt.Printf("✓ Saved to: %s\n", output)
	p.Printf("✓ File size: ~%.1f KB (%d bytes)\n", float64(size)/1024, size)
	fmt.Println("\nNOTE: This is simplified approximation data.")
	fmt.Println("Replace with precise astronomical calculations for production use.")

	return nil
}
