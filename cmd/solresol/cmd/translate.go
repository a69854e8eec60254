package cmd

import (
	"fmt"
	"strings"

	"github.com/ferrolis/solresol/internal/dict"
	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate <phrase>...",
	Short: "Translate a phrase using the dictionary",
	Long: `Parse a phrase and look every word up in the configured dictionary.
By default the first definition of each word is used.

Examples:
  solresol translate dore milasi domi
  solresol translate --all "solresol"
  solresol translate --random dore fasol`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

var (
	translateAll    bool
	translateRandom bool
	translateIndex  int
)

func init() {
	translateCmd.Flags().BoolVar(&translateAll, "all", false, "show every definition of each word")
	translateCmd.Flags().BoolVar(&translateRandom, "random", false, "pick a random definition per word")
	translateCmd.Flags().IntVar(&translateIndex, "index", 0, "definition index to use per word")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	syntaxName, _ := cmd.Flags().GetString("syntax")
	syntax, err := sol.ParseSyntax(syntaxName)
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

	p, err := sol.ParsePhrase(strings.Join(args, " "), syntax)
	if err != nil {
		return err
	}

	out, err := dict.Translate(p, d, dict.TranslateOptions{
		All:    translateAll,
		Random: translateRandom,
		Index:  translateIndex,
	})
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
