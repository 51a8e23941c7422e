package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pders01/solarterms/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Write a default config file to $HOME/.config/solarterms/config.toml.

The file sets the year range, the output path and the log level used by
the other commands. An existing config is left alone unless --force is
given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "solarterms")
	configPath := filepath.Join(configDir, "config.toml")

	exists, err := afero.Exists(appFs, configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !initForce {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	if err := appFs.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# solarterms configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(config.DefaultSettings()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := afero.WriteFile(appFs, configPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("✓ Created default config: %s\n", configPath)
	fmt.Println("  You can now use: solarterms generate")

	return nil
}
