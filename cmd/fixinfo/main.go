// Command fixinfo prints value tables and accuracy reports for the
// fixed-point primitives.
//
// Usage:
//
//	fixinfo [flags]
//
// Without flags it prints the accuracy report.
//
// Examples:
//
//	fixinfo -table
//	fixinfo -atan2 -radius 10
//	fixinfo -stats
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/measure/accuracy"
)

func main() {
	table := flag.Bool("table", false, "print the 256-row sin/cos table")
	atan2 := flag.Bool("atan2", false, "print an atan2 sweep around the circle")
	stats := flag.Bool("stats", false, "print the accuracy report")
	radius := flag.Int("radius", 1000, "sweep radius in Q8.8 units for -atan2")
	steps := flag.Int("steps", 64, "number of sweep directions for -atan2")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fixinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints value tables and accuracy reports for the fixed-point primitives.\n")
		fmt.Fprintf(os.Stderr, "Without flags, prints the accuracy report.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if !*table && !*atan2 && !*stats {
		*stats = true
	}

	if *table {
		printTrigTable()
	}
	if *atan2 {
		if err := printAtan2Sweep(*radius, *steps); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if *stats {
		printStats()
	}
}

func printTrigTable() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Angle\tDegrees\tsin\tcos\t\n")
	fmt.Fprintf(tw, "-----\t-------\t---\t---\t\n")

	for i := range 256 {
		a := fixed.Angle(i)
		fmt.Fprintf(tw, "%d\t%.2f\t%.5f\t%.5f\t\n",
			i, a.Degrees(), fixed.Sin(a).Float(), fixed.Cos(a).Float())
	}
	tw.Flush()
}

func printAtan2Sweep(radius, steps int) error {
	if radius <= 0 || radius > 32767 {
		return fmt.Errorf("radius %d out of range [1, 32767]", radius)
	}
	if steps <= 0 {
		return fmt.Errorf("steps %d must be positive", steps)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "y\tx\tatan2\tDegrees\t\n")
	fmt.Fprintf(tw, "-\t-\t-----\t-------\t\n")

	for k := range steps {
		// Walk the circle using the library's own trig so the sweep is
		// something a float-free caller could reproduce.
		dir := fixed.Angle(k * 256 / steps)
		x := fixed.Q8(int32(fixed.Cos(dir)) * int32(radius) >> 8)
		y := fixed.Q8(int32(fixed.Sin(dir)) * int32(radius) >> 8)

		a := fixed.Atan2(y, x)
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.2f\t\n", y, x, a, a.Degrees())
	}
	return tw.Flush()
}

func printStats() {
	sine := accuracy.SineError()
	cosine := accuracy.CosineError()
	at := accuracy.Atan2Error(accuracy.Config{})
	hy := accuracy.HypotError()
	purity := accuracy.SinePurity(accuracy.Config{})

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Routine\tMax Err\tRMS Err\tUnit\tSamples\t\n")
	fmt.Fprintf(tw, "-------\t-------\t-------\t----\t-------\t\n")
	fmt.Fprintf(tw, "Sin\t%.2f\t%.2f\tQ8.8\t%d\t\n", sine.Max, sine.RMS, sine.Samples)
	fmt.Fprintf(tw, "Cos\t%.2f\t%.2f\tQ8.8\t%d\t\n", cosine.Max, cosine.RMS, cosine.Samples)
	fmt.Fprintf(tw, "Atan2\t%.2f\t%.2f\tangle\t%d\t\n", at.Max, at.RMS, at.Samples)
	fmt.Fprintf(tw, "Hypot\t%.2f\t%.2f\tQ8.8\t%d\t\n", hy.Max, hy.RMS, hy.Samples)
	tw.Flush()

	fmt.Printf("\nSine purity: fundamental bin %d, THD %.1f dB, SINAD %.1f dB\n",
		purity.FundamentalBin, purity.THDdB, purity.SINADdB)
}
