package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/toon-format/toon-go/toon"
)

// validate decodes each input and reports the outcome. It returns an
// error if any input is malformed, after checking all of them.
func validate(args []string) error {
	if len(args) == 0 {
		return errors.New("no input files specified")
	}

	bad := 0
	for _, in := range args {
		t, err := toon.ReadFile(in)
		if err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "%v: %v\n", in, err)
			continue
		}
		fmt.Printf("%v: ok (%v columns, %v rows)\n", in, t.NumCols(), t.NumRows())
	}

	if bad > 0 {
		return fmt.Errorf("%v of %v inputs invalid", bad, len(args))
	}
	return nil
}
