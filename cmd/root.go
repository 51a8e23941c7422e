package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/solarterms/internal/clock"
	"github.com/pders01/solarterms/internal/config"
	"github.com/pders01/solarterms/internal/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// Swapped out in tests
var (
	appFs    afero.Fs    = afero.NewOsFs()
	appClock clock.Clock = clock.NewSystem()
)

var rootCmd = &cobra.Command{
	Use:   "solarterms",
	Short: "Reference table generator for the 24 solar terms",
	Long: `solarterms generates a static reference table of approximate dates
for the 24 traditional East Asian solar terms and writes it as JSON:
  - one record per year with all 24 term dates
  - descriptive metadata for every term (major and minor)
  - coverage, precision and roadmap notes

The table seeds solar month lookups. Dates are fixed approximations
(12:00 UTC on a typical day), not astronomical calculations.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/solarterms/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "solarterms"))
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	readErr := viper.ReadInConfig()

	logger.Init(config.GetLogLevel(), verbose, os.Stderr)

	if readErr == nil {
		logger.Log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Log.Warnf("Could not read config file %s: %v", cfgFile, readErr)
	}
}
