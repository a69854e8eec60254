package cmd

import (
	"fmt"
	"strings"

	"github.com/ferrolis/solresol/internal/glyph"
	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw <phrase>...",
	Short: "Render a phrase as stenographic glyphs",
	Long: `Parse a phrase and render its glyphs to a PNG image, with a
half-block preview printed to the terminal.

Example:
  solresol draw -o phrase.png --color navy dore milasi domi`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDraw,
}

var (
	drawOut    string
	drawColor  string
	drawWeight float64
	drawScale  float64
	drawNoTerm bool
)

func init() {
	drawCmd.Flags().StringVarP(&drawOut, "out", "o", "", "output PNG file (omit to only preview)")
	drawCmd.Flags().StringVar(&drawColor, "color", "", "stroke color name or #rrggbb (default from config)")
	drawCmd.Flags().Float64Var(&drawWeight, "weight", 0, "stroke width in glyph units (default from config)")
	drawCmd.Flags().Float64Var(&drawScale, "scale", 0, "pixels per glyph unit (default from config)")
	drawCmd.Flags().BoolVar(&drawNoTerm, "no-preview", false, "skip the terminal preview")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	syntaxName, _ := cmd.Flags().GetString("syntax")
	syntax, err := sol.ParseSyntax(syntaxName)
	if err != nil {
		return err
	}

	p, err := sol.ParsePhrase(strings.Join(args, " "), syntax)
	if err != nil {
		return err
	}

	cfg := loadUserConfig()
	opts := glyph.RenderOptions{
		Scale:  cfg.Render.Scale,
		Weight: cfg.Render.Weight,
	}
	colorName := cfg.Render.Color
	if drawColor != "" {
		colorName = drawColor
	}
	if colorName != "" {
		c, err := glyph.ParseColor(colorName)
		if err != nil {
			return err
		}
		opts.Color = c
	}
	if drawWeight > 0 {
		opts.Weight = drawWeight
	}
	if drawScale > 0 {
		opts.Scale = drawScale
	}

	if !drawNoTerm {
		fmt.Println(glyph.Blocks(p, 72))
	}
	if drawOut != "" {
		img := glyph.Render(p, opts)
		if err := glyph.SavePNG(drawOut, img); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%dx%d)\n", drawOut, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}
