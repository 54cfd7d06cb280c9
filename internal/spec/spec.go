package spec

import (
	"fmt"
	"strconv"
	"strings"

	"asn-label-maker/internal/models"
)

// Palette cycles by year so labels from consecutive years are easy to
// tell apart at a glance.
var Palette = []string{
	"#fc990f",
	"#cec323",
	"#53adfc",
	"#b53834",
	"#4fce46",
	"#6374e2",
	"#55d1ac",
	"#ff0090",
}

// Range is one parsed numbering range. First and Last are inclusive.
type Range struct {
	Year  int
	First int
	Last  int
}

// Count returns the number of serials the range produces.
func (r Range) Count() int {
	return r.Last - r.First + 1
}

// Options control how serials are expanded into label records.
type Options struct {
	Prefix string
	Digits int
}

// FirstFunc supplies the starting serial for a range whose first field is
// empty. It receives the parsed year field.
type FirstFunc func(year int) (int, error)

// ParseRange parses a range of the form "[year]:[first]:[last]".
//
// An empty year means 0. An empty first means 1, unless firstFn is
// non-nil, in which case it decides. The last field may be an integer
// (inclusive), "xN" for N full columns of labels, or empty for one full
// sheet; rows and cols size the latter two forms.
func ParseRange(cfg string, rows, cols int, firstFn FirstFunc) (Range, error) {
	parts := strings.Split(cfg, ":")
	if len(parts) != 3 {
		return Range{}, fmt.Errorf("%w: %q (want year:first:last)", ErrBadRange, cfg)
	}

	year := 0
	if parts[0] != "" {
		v, err := strconv.Atoi(parts[0])
		if err != nil || v < 0 {
			return Range{}, fmt.Errorf("%w: %q: bad year %q", ErrBadRange, cfg, parts[0])
		}
		year = v
	}

	first := 1
	switch {
	case parts[1] != "":
		v, err := strconv.Atoi(parts[1])
		if err != nil || v < 0 {
			return Range{}, fmt.Errorf("%w: %q: bad first serial %q", ErrBadRange, cfg, parts[1])
		}
		first = v
	case firstFn != nil:
		v, err := firstFn(year)
		if err != nil {
			return Range{}, err
		}
		first = v
	}

	var last int
	switch {
	case parts[2] == "":
		// one full sheet
		last = first + rows*cols - 1
	case strings.HasPrefix(parts[2], "x"):
		// n full columns
		n, err := strconv.Atoi(parts[2][1:])
		if err != nil || n < 1 {
			return Range{}, fmt.Errorf("%w: %q: bad column count %q", ErrBadRange, cfg, parts[2])
		}
		last = first + rows*n - 1
	default:
		v, err := strconv.Atoi(parts[2])
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: bad last serial %q", ErrBadRange, cfg, parts[2])
		}
		last = v
	}

	if last < first {
		return Range{}, fmt.Errorf("%w: %q: last serial %d before first %d", ErrBadRange, cfg, last, first)
	}

	return Range{Year: year, First: first, Last: last}, nil
}

// Expand produces the label records for the given ranges, in order.
func Expand(ranges []Range, opts Options) []models.Label {
	total := 0
	for _, r := range ranges {
		total += r.Count()
	}

	labels := make([]models.Label, 0, total)
	for _, r := range ranges {
		for sn := r.First; sn <= r.Last; sn++ {
			labels = append(labels, makeLabel(r.Year, sn, opts))
		}
	}
	return labels
}

func makeLabel(year, serial int, opts Options) models.Label {
	id := fmt.Sprintf("%0*d", opts.Digits, serial)

	zeros := ""
	if n := opts.Digits - len(strconv.Itoa(serial)); n > 0 {
		zeros = strings.Repeat("0", n)
	}

	return models.Label{
		Year:   year,
		Serial: serial,
		Code:   fmt.Sprintf("%s%02d%s", opts.Prefix, year%100, id),
		ID:     id,
		Zeros:  zeros,
		Color:  Palette[year%len(Palette)],
	}
}
