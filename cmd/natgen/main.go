// natgen writes the type-level rank numerals used by package typenat.
//
// It is normally run through go generate in typenat:
//
//	//go:generate go run ../cmd/natgen -o nat_gen.go --package typenat --max 32
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/robert-malhotra/go-multiarray/internal/natgen"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := natgen.DefaultConfig()
	var output string
	var verbose bool

	flagSet := pflag.NewFlagSet("natgen", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	flagSet.StringVar(&cfg.Package, "package", cfg.Package, "package clause of the generated file")
	flagSet.IntVar(&cfg.Max, "max", cfg.Max, fmt.Sprintf("largest numeral to generate (1-%d)", natgen.Limit))
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	src, err := natgen.Generate(cfg)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = stdout.Write(src)
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	logger.Info("generated numerals", "file", output, "package", cfg.Package, "max", cfg.Max, "bytes", len(src))
	return nil
}
