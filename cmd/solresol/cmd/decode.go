package cmd

import (
	"fmt"
	"math/big"

	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <packed-integer>",
	Short: "Decode a packed integer back into a phrase",
	Long: `Decode a phrase-level packed integer (decimal, or octal with an 0o
prefix) into its surface forms. Each word occupies 5 octal digits.

Examples:
  solresol decode 32831
  solresol decode 0o100077`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var decodeWord bool

func init() {
	decodeCmd.Flags().BoolVarP(&decodeWord, "word", "w", false, "decode a single word's packed value instead of a phrase")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	packed, ok := new(big.Int).SetString(args[0], 0)
	if !ok {
		return fmt.Errorf("not an integer: %q", args[0])
	}

	var p sol.Phrase
	if decodeWord {
		if !packed.IsUint64() {
			return fmt.Errorf("word value out of range: %s", packed)
		}
		w, err := sol.WordFromPacked(packed.Uint64())
		if err != nil {
			return err
		}
		p = sol.PhraseFromWords(w)
	} else {
		var err error
		p, err = sol.PhraseFromPacked(packed)
		if err != nil {
			return err
		}
	}

	fmt.Printf("full: %s\n", p)
	fmt.Printf("ses:  %s\n", p.Ses())
	fmt.Printf("num:  %s\n", digitList(p))
	return nil
}
