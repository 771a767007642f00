// Command dct prints the DCT coefficients of a square matrix.
//
// Usage:
//
//	dct [flags] [file]
//
// The matrix is read from file, or from stdin when file is "-" or omitted.
// Flags default to the DCT_* environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/seeker/common-hash/internal/config"
	"github.com/seeker/common-hash/internal/matrixio"
	"github.com/seeker/common-hash/phash/dct"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "dct: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("dct", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("n", cfg.Size, "block dimension (0 = infer from input)")
	strategyName := fs.String("strategy", cfg.Strategy, "evaluation strategy: direct, parallel, separable, fourier")
	workers := fs.Int("workers", cfg.Workers, "goroutines for the parallel strategy (0 = GOMAXPROCS)")
	inverse := fs.Bool("inverse", false, "reconstruct a block from coefficients instead")
	formatName := fs.String("format", cfg.Format, "output format: text or json")
	precision := fs.Int("precision", cfg.Precision, "digits after the decimal point in text output")
	logLevel := fs.String("log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	level := slog.LevelInfo
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	strategy, err := dct.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}
	format, err := matrixio.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	in := stdin
	if path := fs.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	values, side, err := matrixio.Read(in)
	if err != nil {
		return err
	}
	n := *size
	if n == 0 {
		n = side
	}

	tr, err := dct.New(dct.WithSize(n), dct.WithStrategy(strategy), dct.WithWorkers(*workers))
	if err != nil {
		return err
	}

	start := time.Now()
	var out []float64
	if *inverse {
		out, err = tr.Inverse(values)
	} else {
		out, err = tr.Transform(values)
	}
	if err != nil {
		return err
	}
	slog.Debug("transform done", "size", n, "strategy", strategy, "inverse", *inverse, "elapsed", time.Since(start))

	return matrixio.Write(stdout, out, n, format, *precision)
}
