package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abx-format/go-abx/encode"
	"github.com/abx-format/go-abx/parse"

	"github.com/scott-cotton/cli"
)

func convert(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no input file specified", cli.ErrUsage)
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: too many arguments", cli.ErrUsage)
	}
	input := args[0]
	output := ""
	if len(args) == 2 {
		output = args[1]
	}
	if output == "" {
		switch {
		case input == "-":
			output = "-"
		case cfg.InPlace:
			output = input
		default:
			output = xmlPath(input)
		}
	}

	data, err := readInput(cc, input)
	if err != nil {
		return err
	}
	root, err := parse.Parse(data, parse.MultiRoot(cfg.MultiRoot))
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", input, err)
	}

	if output == "-" {
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		note(input, "stdout", cfg.MultiRoot)
		return nil
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", output, err)
	}
	if err := encode.Encode(root, f, cfg.encOpts(f)...); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	note(input, output, cfg.MultiRoot)
	return nil
}

func readInput(cc *cli.Context, input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", input, err)
	}
	return d, nil
}

// xmlPath replaces the input path's extension with .xml, appending it
// when the input has none.
func xmlPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".xml"
}

func note(input, output string, multiRoot bool) {
	suffix := ""
	if multiRoot {
		suffix = " (multi-root mode)"
	}
	fmt.Fprintf(os.Stderr, "Successfully converted %s to %s%s\n", input, output, suffix)
}
