package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/toon-format/toon-go/internal/config"
)

type stdin struct{}

func (stdin) Read(bs []byte) (int, error) { return os.Stdin.Read(bs) }
func (stdin) Close() error                { return nil }

// OpenInput opens an input stream; "-" means stdin.
func OpenInput(in string) (io.ReadCloser, error) {
	if in == "-" {
		return stdin{}, nil
	}
	r, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type uncloseable struct {
	w io.Writer
}

func (u uncloseable) Write(bs []byte) (int, error) {
	return u.w.Write(bs)
}

func (u uncloseable) Close() error {
	return nil
}

// OpenOutput opens the output stream; the empty string means stdout.
func OpenOutput(outf string) (io.WriteCloser, error) {
	if outf == "" {
		return uncloseable{os.Stdout}, nil
	}
	return os.OpenFile(outf, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0644)
}

// options are the arguments shared by the converting commands, parsed
// in the order given so that flags override config-file defaults.
type options struct {
	outf string
	name string
	conf string

	inputs []string
}

func parseOptions(args []string) (*options, *config.Config, error) {
	ret := &options{}

	i := 0
	for ; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			break
		}
		if arg == "--" {
			i++
			break
		}

		switch arg {
		case "-o", "--output":
			i++
			if i >= len(args) {
				return nil, nil, errors.New("no output file specified")
			}
			ret.outf = args[i]

		case "-n", "--name":
			i++
			if i >= len(args) {
				return nil, nil, errors.New("no table name specified")
			}
			ret.name = args[i]

		case "-c", "--config":
			i++
			if i >= len(args) {
				return nil, nil, errors.New("no config file specified")
			}
			ret.conf = args[i]

		default:
			return nil, nil, errors.New("unrecognized option \"" + arg + "\"")
		}
	}

	ret.inputs = args[i:]

	cfg, err := config.Load(ret.conf)
	if err != nil {
		return nil, nil, err
	}

	if ret.outf == "" {
		ret.outf = cfg.Output
	}
	if ret.name == "" {
		ret.name = cfg.TableName
	}

	return ret, cfg, nil
}
