package cmd

import (
	"fmt"
	"strings"

	"github.com/ferrolis/solresol/internal/audio"
	"github.com/ferrolis/solresol/internal/sol"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <phrase>...",
	Short: "Synthesize a phrase as a melody and write a WAV file",
	Long: `Parse a phrase and synthesize one sine tone per symbol, with a short
silence between words, writing the result as 16-bit mono PCM.

Example:
  solresol play -o melody.wav dore milasi domi`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlay,
}

var (
	playOut     string
	playNoteLen float64
	playOctave  int
)

func init() {
	playCmd.Flags().StringVarP(&playOut, "out", "o", "melody.wav", "output WAV file")
	playCmd.Flags().Float64Var(&playNoteLen, "note-len", 0, "seconds per symbol (default from config)")
	playCmd.Flags().IntVar(&playOctave, "octave", 0, "octave to transpose to (default from config)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
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
	opts := audio.Options{
		SampleRate:    cfg.Audio.SampleRate,
		NoteLen:       cfg.Audio.NoteLen,
		Amplitude:     cfg.Audio.Amplitude,
		EnvelopeRatio: cfg.Audio.EnvelopeRatio,
		GapRatio:      cfg.Audio.GapRatio,
		Octave:        cfg.Audio.Octave,
	}
	if opts.SampleRate <= 0 {
		opts.SampleRate = audio.Defaults().SampleRate
	}
	if playNoteLen > 0 {
		opts.NoteLen = playNoteLen
	}
	if playOctave != 0 {
		opts.Octave = playOctave
	}

	samples := audio.PhraseMelody(p, opts)
	if err := audio.WriteWAV(playOut, samples, opts.SampleRate); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%.2fs, %d symbols)\n", playOut,
		float64(len(samples))/float64(opts.SampleRate), symbolCount(p))
	return nil
}

func symbolCount(p sol.Phrase) int {
	n := 0
	for _, w := range p.Words() {
		n += w.Len()
	}
	return n
}
