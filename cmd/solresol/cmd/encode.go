package cmd

import (
	"fmt"
	"strings"

	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <phrase>...",
	Short: "Show every representation of a phrase",
	Long: `Parse a phrase in the syntax given by --syntax and print its full
text, ses phonetic form, numeric form, per-word packed values and the
phrase-level packed integer.

Examples:
  solresol encode dore milasi domi
  solresol encode -x ses "pe mait pi"
  solresol encode -x num 12 367 13`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	syntaxName, _ := cmd.Flags().GetString("syntax")
	syntax, err := sol.ParseSyntax(syntaxName)
	if err != nil {
		return err
	}

	p, err := sol.ParsePhrase(strings.Join(args, " "), syntax)
	if err != nil {
		return err
	}

	fmt.Printf("full:   %s\n", p)
	fmt.Printf("ses:    %s\n", p.Ses())
	fmt.Printf("num:    %s\n", digitList(p))
	fmt.Printf("values: %s\n", valueList(p))

	packed, err := p.Packed()
	if err != nil {
		fmt.Printf("packed: unavailable (%v)\n", err)
		return nil
	}
	fmt.Printf("packed: %s (0o%s)\n", packed, packed.Text(8))
	return nil
}

func digitList(p sol.Phrase) string {
	parts := make([]string, p.Len())
	for i, w := range p.Words() {
		parts[i] = w.Digits()
	}
	return strings.Join(parts, " ")
}

func valueList(p sol.Phrase) string {
	parts := make([]string, 0, p.Len())
	for _, v := range p.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
