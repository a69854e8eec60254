// Package cmd contains all CLI commands for the solresol tool.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ferrolis/solresol/internal/config"
	"github.com/ferrolis/solresol/internal/dict"
	"github.com/ferrolis/solresol/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "solresol",
	Short: "Solresol - encode, decode and explore the musical language",
	Long: `solresol is a CLI tool for working with Solresol, the constructed
language whose words are spelled from the seven solfège notes.

Every phrase has four interchangeable representations:
  - full text     dore milasi domi
  - ses phonetic  pe mait pi (consonant/vowel transliteration)
  - numeric       12 367 13
  - packed        a single base-8 integer, 5 octal digits per word

Running 'solresol' without arguments launches the interactive TUI.`,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/solresol)")
	rootCmd.PersistentFlags().String("dictionary", "", "dictionary file (.json or .db)")
	rootCmd.PersistentFlags().StringP("syntax", "x", "full", "input syntax: full, ses or num")

	viper.BindPFlag("dictionary", rootCmd.PersistentFlags().Lookup("dictionary"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", filepath.Join(home, ".config", "solresol"))
	}

	viper.SetEnvPrefix("SOLRESOL")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadUserConfig reads config.yaml from the config directory, falling back
// to defaults when it does not exist. A file that exists but cannot be
// parsed is reported, not silently ignored.
func loadUserConfig() config.Config {
	path := filepath.Join(getConfigDir(), "config.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring %s: %v\n", path, err)
		}
		return config.Default()
	}
	return *cfg
}

// openDictionary opens the dictionary named by the --dictionary flag or
// the config file. Returns nil when none is configured.
func openDictionary(cfg config.Config) (dict.Dictionary, func(), error) {
	path := viper.GetString("dictionary")
	if path == "" {
		path = cfg.Dictionary
	}
	if path == "" {
		return nil, func() {}, nil
	}
	if strings.HasSuffix(path, ".json") {
		d, err := dict.LoadJSON(path)
		if err != nil {
			return nil, nil, err
		}
		return d, func() {}, nil
	}
	d, err := dict.OpenSQL(path)
	if err != nil {
		return nil, nil, err
	}
	return d, func() { d.Close() }, nil
}

// runTUI launches the interactive transcoder.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	d, closeDict, err := openDictionary(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open dictionary: %v\n", err)
		d = nil
		closeDict = func() {}
	}
	defer closeDict()

	p := tea.NewProgram(tui.New(d), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
