package main

import (
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/toon-format/toon-go/toon"
)

// fromCSV converts a CSV file to TOON. The first CSV record is the
// header; every later record is a data row whose fields go through the
// same lexical type inference the TOON decoder applies, so "42"
// becomes an integer and an empty cell becomes null. CSV does not
// preserve quoting, so there is no way to force a numeric-looking cell
// to stay a string on this path.
func fromCSV(args []string) error {
	opts, cfg, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(opts.inputs) != 1 {
		return errors.New("from-csv takes exactly one input file")
	}

	in, err := OpenInput(opts.inputs[0])
	if err != nil {
		return err
	}
	defer in.Close()

	r := csv.NewReader(in)
	r.Comma = []rune(cfg.CSV.Comma)[0]
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("%v: %w", opts.inputs[0], err)
	}
	if len(records) == 0 {
		return fmt.Errorf("%v: no header record", opts.inputs[0])
	}

	b := toon.NewTableBuilder(opts.name)
	if err := b.Columns(records[0]...); err != nil {
		return err
	}

	for _, rec := range records[1:] {
		row := make([]toon.Value, len(rec))
		for i, text := range rec {
			row[i] = toon.Infer(text)
		}
		if err := b.Append(row...); err != nil {
			return err
		}
	}

	t, err := b.Build()
	if err != nil {
		return err
	}

	out, err := OpenOutput(opts.outf)
	if err != nil {
		return err
	}
	defer out.Close()

	return toon.EncodeTo(out, t)
}

// toCSV converts a TOON file to CSV. Values are written in their
// canonical field text; type information beyond the lexical form is
// not representable in CSV and is dropped.
func toCSV(args []string) error {
	opts, cfg, err := parseOptions(args)
	if err != nil {
		return err
	}
	if len(opts.inputs) != 1 {
		return errors.New("to-csv takes exactly one input file")
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

	w := csv.NewWriter(out)
	w.Comma = []rune(cfg.CSV.Comma)[0]

	if err := w.Write(t.Columns()); err != nil {
		return err
	}
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = v.Text()
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
