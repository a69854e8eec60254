package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ferrolis/solresol/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config directory with default settings",
	Long: `Create $HOME/.config/solresol (or the directory given by --config)
and write a config.yaml with default audio and render settings. An
existing config file is left untouched.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := getConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("config already exists at %s\n", path)
		return nil
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
