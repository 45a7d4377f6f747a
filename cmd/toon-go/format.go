package main

import (
	"errors"
	"fmt"

	"github.com/toon-format/toon-go/toon"
)

// format reads a TOON input and re-writes it in canonical form:
// canonical value spellings, minimal quoting, \n terminators, no
// separator line.
func format(args []string) error {
	opts, _, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(opts.inputs) != 1 {
		return errors.New("fmt takes exactly one input file")
	}

	in, err := OpenInput(opts.inputs[0])
	if err != nil {
		return err
	}
	defer in.Close()

	t, err := toon.DecodeFrom(in)
	if err != nil {
		return fmt.Errorf("%v: %w", opts.inputs[0], err)
	}

	out, err := OpenOutput(opts.outf)
	if err != nil {
		return err
	}
	defer out.Close()

	return toon.EncodeTo(out, t)
}
