// Package audio synthesizes Solresol melodies: one sine tone per symbol,
// shaped by a linear attack/decay envelope, with silence between words.
// The codec supplies only the per-symbol tone frequency; everything else
// is caller-controlled here.
package audio

import (
	"fmt"
	"math"
	"os"

	"github.com/ferrolis/solresol/internal/sol"
	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Options control synthesis. Zero values are replaced by the defaults.
type Options struct {
	SampleRate    int     // samples per second
	NoteLen       float64 // seconds per symbol
	Amplitude     float64 // peak amplitude, 0..1
	EnvelopeRatio float64 // fraction of a note spent ramping up and down
	GapRatio      float64 // inter-word silence as a multiple of NoteLen
	Octave        int     // octave the tone table is transposed to
}

// Defaults returns the standard synthesis parameters.
func Defaults() Options {
	return Options{
		SampleRate:    44100,
		NoteLen:       0.2,
		Amplitude:     1,
		EnvelopeRatio: 0.2,
		GapRatio:      1,
		Octave:        sol.ReferenceOctave,
	}
}

func (o Options) withDefaults() Options {
	d := Defaults()
	if o.SampleRate <= 0 {
		o.SampleRate = d.SampleRate
	}
	if o.NoteLen <= 0 {
		o.NoteLen = d.NoteLen
	}
	if o.Amplitude <= 0 {
		o.Amplitude = d.Amplitude
	}
	if o.EnvelopeRatio <= 0 {
		o.EnvelopeRatio = d.EnvelopeRatio
	}
	if o.GapRatio < 0 {
		o.GapRatio = d.GapRatio
	}
	if o.Octave == 0 {
		o.Octave = d.Octave
	}
	return o
}

// Note synthesizes a single tone at the given frequency.
func Note(freq float64, opts Options) []float64 {
	opts = opts.withDefaults()
	n := int(float64(opts.SampleRate) * opts.NoteLen)
	env := int(opts.EnvelopeRatio * float64(n))
	if 2*env > n {
		env = n / 2
	}

	samples := make([]float64, n)
	fmul := 2 * math.Pi * freq / float64(opts.SampleRate)
	for i := range samples {
		gain := opts.Amplitude
		switch {
		case i < env:
			gain *= float64(i) / float64(env)
		case i >= n-env:
			gain *= float64(n-1-i) / float64(env)
		}
		samples[i] = gain * math.Sin(fmul*float64(i))
	}
	return samples
}

// WordMelody synthesizes one note per symbol, concatenated.
func WordMelody(w sol.Word, opts Options) []float64 {
	opts = opts.withDefaults()
	var samples []float64
	for _, s := range w.Symbols() {
		samples = append(samples, Note(s.Freq(opts.Octave), opts)...)
	}
	return samples
}

// PhraseMelody synthesizes every word followed by GapRatio note-lengths of
// silence.
func PhraseMelody(p sol.Phrase, opts Options) []float64 {
	opts = opts.withDefaults()
	gap := make([]float64, int(opts.NoteLen*float64(opts.SampleRate)*opts.GapRatio))
	var samples []float64
	for _, w := range p.Words() {
		samples = append(samples, WordMelody(w, opts)...)
		samples = append(samples, gap...)
	}
	return samples
}

// WriteWAV writes samples as 16-bit mono PCM to path. Samples outside
// [-1, 1] are clipped.
func WriteWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           make([]int, len(samples)),
		SourceBitDepth: 16,
	}
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		buf.Data[i] = int(s * math.MaxInt16)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav file: %w", err)
	}
	return nil
}
