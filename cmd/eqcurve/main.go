// Command eqcurve prints the magnitude response of the graphic equalizer
// for a gain vector.
//
// Usage:
//
//	eqcurve [flags]
//
// The response is evaluated on a log-spaced frequency grid. With -measure
// every grid point is also measured by running a sine through an
// Equalizer and comparing tone levels, which checks the real-time path
// against the design.
//
// Examples:
//
//	eqcurve -gains 0,0,0,0,0,6,0,0,0,0
//	eqcurve -rate 48000 -points 64 -gains 3,3,0,0,-4,0,0,2,4,6
//	eqcurve -measure -gains 0,0,0,0,0,-12,0,0,0,0
//	eqcurve -bands -octave 3
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/cwbudde/algo-eq/dsp/filter/bank"
	"github.com/cwbudde/algo-eq/measure/tone"
)

const (
	measureFrames = 16384
	measureSettle = 4096
	measureLevel  = 4000
)

type options struct {
	rate    float64
	gains   []float64
	points  int
	q       float64
	octave  int
	fmin    float64
	fmax    float64
	measure bool
}

func main() {
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	gains := flag.String("gains", "0,0,0,0,0,0,0,0,0,0", "comma-separated band gains in dB, lowest band first")
	points := flag.Int("points", 32, "number of log-spaced frequencies")
	q := flag.Float64("q", 0, "band quality factor (0 keeps the default 1.414)")
	octave := flag.Int("octave", 0, "use a 1/N-octave layout instead of the ten fixed bands (gains must match its band count)")
	fmin := flag.Float64("fmin", 20, "lowest frequency in Hz")
	fmax := flag.Float64("fmax", 20000, "highest frequency in Hz (clipped below Nyquist)")
	measure := flag.Bool("measure", false, "also measure each point through the real-time path")
	bands := flag.Bool("bands", false, "print the band layout and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqcurve [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the magnitude response of the graphic equalizer.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eqcurve -gains 0,0,0,0,0,6,0,0,0,0\n")
		fmt.Fprintf(os.Stderr, "  eqcurve -measure -points 16 -gains 6,0,0,0,0,0,0,0,0,-6\n")
		fmt.Fprintf(os.Stderr, "  eqcurve -bands\n")
	}
	flag.Parse()

	g, err := parseGains(*gains)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	opts := options{
		rate:    *rate,
		gains:   g,
		points:  *points,
		q:       *q,
		octave:  *octave,
		fmin:    *fmin,
		fmax:    *fmax,
		measure: *measure,
	}

	if *bands {
		err = printBands(os.Stdout, opts)
	} else {
		err = printCurve(os.Stdout, opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseGains(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("gain %d: %w", i, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("no gains given")
	}
	return out, nil
}

func newEqualizer(o options) (*eq.Equalizer, error) {
	var bankOpts []bank.Option
	if o.octave > 0 {
		bankOpts = append(bankOpts, bank.WithOctave(o.octave))
	}
	if o.q > 0 {
		bankOpts = append(bankOpts, bank.WithQ(o.q))
	}
	return eq.New(eq.WithSampleRate(o.rate), eq.WithBankOptions(bankOpts...))
}

func printBands(w io.Writer, o options) error {
	e, err := newEqualizer(o)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tCenter [Hz]\tQ\n")
	fmt.Fprintf(tw, "----\t-----------\t-\n")
	for i, b := range e.Bands() {
		fmt.Fprintf(tw, "%d\t%g\t%.3f\n", i, b.CenterFreq, b.Q)
	}
	return tw.Flush()
}

func printCurve(w io.Writer, o options) error {
	e, err := newEqualizer(o)
	if err != nil {
		return err
	}
	if err := e.SetGains(o.gains); err != nil {
		return err
	}

	freqs := logGrid(o.fmin, math.Min(o.fmax, 0.45*o.rate), o.points)
	if len(freqs) == 0 {
		return fmt.Errorf("empty frequency range %g..%g Hz", o.fmin, o.fmax)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if o.measure {
		fmt.Fprintf(tw, "Freq [Hz]\tDesign [dB]\tMeasured [dB]\n")
		fmt.Fprintf(tw, "---------\t-----------\t-------------\n")
	} else {
		fmt.Fprintf(tw, "Freq [Hz]\tDesign [dB]\n")
		fmt.Fprintf(tw, "---------\t-----------\n")
	}

	for _, f := range freqs {
		design := e.Response(f)
		if !o.measure {
			fmt.Fprintf(tw, "%.1f\t%+.2f\n", f, design)
			continue
		}

		measured, err := measurePoint(o, f)
		if err != nil {
			return fmt.Errorf("measure %.1f Hz: %w", f, err)
		}
		fmt.Fprintf(tw, "%.1f\t%+.2f\t%+.2f\n", f, design, measured)
	}

	return tw.Flush()
}

// measurePoint runs a sine at freq through a fresh equalizer and returns
// the steady-state level change.
func measurePoint(o options, freq float64) (float64, error) {
	e, err := newEqualizer(o)
	if err != nil {
		return 0, err
	}

	lo, hi := core.SampleRange[int16]()
	step := 2 * math.Pi * freq / o.rate
	in := make([]int16, measureFrames)
	for i := range in {
		in[i] = core.Quantize[int16](measureLevel*math.Sin(step*float64(i)), lo, hi)
	}

	out := append([]int16(nil), in...)
	if err := e.Process(out, 1, 1, o.gains); err != nil {
		return 0, err
	}

	return tone.GainDB(toFloat(in[measureSettle:]), toFloat(out[measureSettle:]), freq, o.rate)
}

func toFloat(x []int16) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func logGrid(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi < lo {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}
	return out
}
