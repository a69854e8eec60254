package cmd

import (
	"fmt"

	"github.com/ferrolis/solresol/internal/dict"
	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Work with the Solresol dictionary",
	Long:  `Commands for importing and querying dictionary files.`,
}

var dictImportCmd = &cobra.Command{
	Use:   "import <dictionary.json> <dictionary.db>",
	Short: "Import a JSON dictionary into a SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE:  runDictImport,
}

var dictLookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up one word's definitions",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictLookup,
}

func init() {
	dictCmd.AddCommand(dictImportCmd)
	dictCmd.AddCommand(dictLookupCmd)
	rootCmd.AddCommand(dictCmd)
}

func runDictImport(cmd *cobra.Command, args []string) error {
	n, err := dict.Import(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("imported %d entries into %s\n", n, args[1])
	return nil
}

func runDictLookup(cmd *cobra.Command, args []string) error {
	syntaxName, _ := cmd.Flags().GetString("syntax")
	syntax, err := sol.ParseSyntax(syntaxName)
	if err != nil {
		return err
	}

	// Parse first so any syntax is accepted, then look up the canonical
	// spelling.
	w, err := sol.ParseWord(args[0], syntax)
	if err != nil {
		return err
	}

	cfg := loadUserConfig()
	d, closeDict, err := openDictionary(cfg)
	if err != nil {
		return err
	}
	defer closeDict()
	if d == nil {
		return fmt.Errorf("no dictionary configured: pass --dictionary or set it in config.yaml")
	}

	defs, err := d.Lookup(w.String())
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", w, defs)
	return nil
}
