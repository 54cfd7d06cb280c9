package main

import (
	"fmt"

	"asn-label-maker/internal/layout"
	"asn-label-maker/internal/models"
	"asn-label-maker/internal/sequence"
	"asn-label-maker/internal/spec"
)

const digitsMax = 10

// numberingOpts are the flags shared by generate and export.
type numberingOpts struct {
	layoutCode string
	layoutFile string
	prefix     string
	digits     int
	resume     bool
}

// expandLabels parses the range arguments against the selected layout and
// expands them into label records. With resume set, ranges that omit
// their first field continue after the serial stored in the sequence db.
func expandLabels(args []string, o numberingOpts) ([]models.Label, layout.Sheet, error) {
	if err := spec.ValidatePrefix(o.prefix); err != nil {
		return nil, layout.Sheet{}, err
	}
	if o.digits < 1 || o.digits > digitsMax {
		return nil, layout.Sheet{}, fmt.Errorf("digits must be between 1 and %d", digitsMax)
	}

	registry := layout.Builtin()
	if o.layoutFile != "" {
		if err := registry.LoadFile(o.layoutFile); err != nil {
			return nil, layout.Sheet{}, err
		}
	}
	sheet, err := registry.Get(o.layoutCode)
	if err != nil {
		return nil, layout.Sheet{}, err
	}

	var firstFn spec.FirstFunc
	if o.resume {
		store, err := sequence.New(dbPath)
		if err != nil {
			return nil, layout.Sheet{}, err
		}
		defer store.Close()
		firstFn = func(year int) (int, error) {
			last, _, err := store.Last(o.prefix, year)
			if err != nil {
				return 0, err
			}
			return last + 1, nil
		}
	}

	ranges := make([]spec.Range, 0, len(args))
	for _, arg := range args {
		r, err := spec.ParseRange(arg, sheet.Rows, sheet.Cols, firstFn)
		if err != nil {
			return nil, layout.Sheet{}, err
		}
		ranges = append(ranges, r)
	}

	labels := spec.Expand(ranges, spec.Options{Prefix: o.prefix, Digits: o.digits})
	return labels, sheet, nil
}

// recordIssued stores the highest generated serial per year into the
// sequence db.
func recordIssued(labels []models.Label, prefix string) error {
	highest := make(map[int]int)
	for _, l := range labels {
		if l.Serial > highest[l.Year] {
			highest[l.Year] = l.Serial
		}
	}

	store, err := sequence.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for year, serial := range highest {
		if err := store.Record(prefix, year, serial); err != nil {
			return err
		}
	}
	return nil
}
