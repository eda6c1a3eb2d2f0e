package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/abx-format/go-abx/token"

	"github.com/scott-cotton/cli"
)

type Config struct {
	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	return cli.NewCommandAt(&cfg.Main, "abxdump").
		WithSynopsis("abxdump [files]").
		WithDescription("abxdump lists the token stream of Android Binary XML (ABX) documents, one token per line with its byte offset, kind, payload type, and decoded payload.").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func dump(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cc.Out, cc.In)
	}
	for _, file := range args {
		if err := dumpFile(cc, file); err != nil {
			return err
		}
	}
	return nil
}

func dumpFile(cc *cli.Context, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := dumpReader(cc.Out, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func dumpReader(w io.Writer, r io.Reader) error {
	rd := token.NewReader(r)
	var interns token.Interns
	if err := token.ReadMagic(rd); err != nil {
		return err
	}
	if err := token.SkipHeaderExtension(rd); err != nil {
		return err
	}
	for {
		off := rd.Offset()
		b, err := rd.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		kind, typ := token.Split(b)
		detail, err := payload(rd, &interns, kind, typ)
		if err != nil {
			return err
		}
		if detail == "" {
			fmt.Fprintf(w, "%06d %s %s\n", off, kind, typ)
		} else {
			fmt.Fprintf(w, "%06d %s %s %s\n", off, kind, typ, detail)
		}
		if kind == token.KindEndDocument {
			return nil
		}
	}
}

func payload(rd *token.Reader, interns *token.Interns, kind token.Kind, typ token.Type) (string, error) {
	switch kind {
	case token.KindStartDocument, token.KindEndDocument:
		return "", nil
	case token.KindStartTag, token.KindEndTag:
		return rd.ReadInterned(interns)
	case token.KindText:
		v, err := rd.ReadString()
		if err != nil {
			return "", err
		}
		return strconv.Quote(v), nil
	case token.KindAttribute:
		name, err := rd.ReadInterned(interns)
		if err != nil {
			return "", err
		}
		v, err := token.DecodeValue(rd, interns, typ)
		if err != nil {
			return "", err
		}
		return name + "=" + strconv.Quote(v), nil
	default:
		// Unknown kinds carry whatever payload their type implies.
		switch typ {
		case 0, token.TypeNull:
			return "", nil
		default:
			v, err := token.DecodeValue(rd, interns, typ)
			if err != nil {
				return "", err
			}
			return strconv.Quote(v), nil
		}
	}
}
