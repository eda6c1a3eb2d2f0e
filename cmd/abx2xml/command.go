package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/abx-format/go-abx/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type Config struct {
	MultiRoot bool `cli:"name=mr desc='enable multi-root processing'"`
	InPlace   bool `cli:"name=i desc='overwrite the input file with the converted output'"`
	Color     bool `cli:"name=color desc='colorize output'"`
	Escape    bool `cli:"name=escape desc='escape markup characters in text and attribute values'"`

	Indent int

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "indent",
		Description: "spaces per indent level (default 2)",
		Type:        cli.NamedFuncOpt(cfg.indentOpt, "(n)"),
	})
	return cli.NewCommandAt(&cfg.Main, "abx2xml").
		WithSynopsis("abx2xml [-mr] [-i] input [output]").
		WithDescription(`abx2xml converts Android Binary XML (ABX) documents to XML text.

The default output path is the input path with its extension replaced
by .xml. With -i, the converted output overwrites the input file. An
output of '-' writes to stdout; an input of '-' reads stdin.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func (cfg *Config) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid indent %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *Config) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeEscape(cfg.Escape),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}
