package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-eq/dsp/eq"
)

func TestParseGains(t *testing.T) {
	got, err := parseGains(" 0, 1.5 ,-3,,6")
	if err != nil {
		t.Fatalf("parseGains: %v", err)
	}
	want := []float64{0, 1.5, -3, 6}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gain %d = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := parseGains("1,x"); err == nil {
		t.Fatal("expected error for non-numeric gain")
	}
	if _, err := parseGains(" , "); err == nil {
		t.Fatal("expected error for empty gains")
	}
}

func TestLogGrid(t *testing.T) {
	g := logGrid(20, 20000, 4)
	want := []float64{20, 200, 2000, 20000}
	for i := range want {
		if math.Abs(g[i]-want[i]) > 1e-9*want[i] {
			t.Fatalf("grid[%d] = %v, want %v", i, g[i], want[i])
		}
	}
	if logGrid(100, 10, 4) != nil {
		t.Fatal("expected nil grid for inverted range")
	}
	if g := logGrid(50, 50, 1); len(g) != 1 || g[0] != 50 {
		t.Fatalf("single point grid = %v", g)
	}
}

func TestPrintCurve(t *testing.T) {
	var buf bytes.Buffer
	o := options{
		rate:   44100,
		gains:  []float64{0, 0, 0, 0, 0, 6, 0, 0, 0, 0},
		points: 3,
		fmin:   10,
		fmax:   1000,
	}
	if err := printCurve(&buf, o); err != nil {
		t.Fatalf("printCurve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[4], "1000.0") || !strings.HasSuffix(lines[4], "+6.00") {
		t.Fatalf("last row = %q, want 1000 Hz at +6.00 dB", lines[4])
	}
}

func TestPrintCurveMeasured(t *testing.T) {
	var buf bytes.Buffer
	o := options{
		rate:    44100,
		gains:   []float64{0, 0, 0, 0, 0, -6, 0, 0, 0, 0},
		points:  1,
		fmin:    1000,
		fmax:    1000,
		measure: true,
	}
	if err := printCurve(&buf, o); err != nil {
		t.Fatalf("printCurve: %v", err)
	}

	fields := strings.Fields(strings.Split(strings.TrimSpace(buf.String()), "\n")[2])
	if len(fields) != 3 || fields[1] != "-6.00" {
		t.Fatalf("row = %v, want design -6.00", fields)
	}
	if fields[2] != "-6.00" && fields[2] != "-6.01" && fields[2] != "-5.99" {
		t.Fatalf("measured = %s, want about -6.00", fields[2])
	}
}

func TestPrintCurveWrongGainCount(t *testing.T) {
	o := options{rate: 44100, gains: []float64{1, 2, 3}, points: 4, fmin: 20, fmax: 20000}
	err := printCurve(&bytes.Buffer{}, o)
	if !errors.Is(err, eq.ErrInvalidGainVectorLength) {
		t.Fatalf("err = %v, want ErrInvalidGainVectorLength", err)
	}
}

func TestPrintBands(t *testing.T) {
	var buf bytes.Buffer
	if err := printBands(&buf, options{rate: 44100, q: 2}); err != nil {
		t.Fatalf("printBands: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	if f := strings.Fields(lines[7]); f[1] != "1000" || f[2] != "2.000" {
		t.Fatalf("band 5 row = %v", f)
	}
}

func TestPrintBandsThirdOctave(t *testing.T) {
	var buf bytes.Buffer
	if err := printBands(&buf, options{rate: 48000, octave: 3}); err != nil {
		t.Fatalf("printBands: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2+30 {
		t.Fatalf("got %d band rows, want 30", len(lines)-2)
	}
}
