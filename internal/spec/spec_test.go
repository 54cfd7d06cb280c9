package spec

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRange(t *testing.T) {
	const rows, cols = 16, 5

	tests := []struct {
		cfg  string
		want Range
	}{
		{"23:1:16", Range{Year: 23, First: 1, Last: 16}},
		{"23:1:x3", Range{Year: 23, First: 1, Last: 48}},
		{"23:1:", Range{Year: 23, First: 1, Last: 80}},
		{"::", Range{Year: 0, First: 1, Last: 80}},
		{":5:x1", Range{Year: 0, First: 5, Last: 20}},
		{"7:100:100", Range{Year: 7, First: 100, Last: 100}},
		{"2023:1:2", Range{Year: 2023, First: 1, Last: 2}},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.cfg, rows, cols, nil)
		if err != nil {
			t.Errorf("ParseRange(%q) returned error: %v", tt.cfg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %+v, want %+v", tt.cfg, got, tt.want)
		}
	}
}

func TestParseRangeErrors(t *testing.T) {
	bad := []string{
		"23:1",       // too few fields
		"23:1:2:3",   // too many fields
		"abc:1:2",    // non-numeric year
		"23:abc:2",   // non-numeric first
		"23:1:abc",   // non-numeric last
		"23:1:x0",    // zero columns
		"23:1:xq",    // non-numeric column count
		"23:10:5",    // last before first
		"-1:1:2",     // negative year
		"23:-5:x1",   // negative first
	}

	for _, cfg := range bad {
		if _, err := ParseRange(cfg, 16, 5, nil); !errors.Is(err, ErrBadRange) {
			t.Errorf("ParseRange(%q) error = %v, want ErrBadRange", cfg, err)
		}
	}
}

func TestParseRangeFirstFunc(t *testing.T) {
	firstFn := func(year int) (int, error) {
		if year != 24 {
			t.Errorf("firstFn got year %d, want 24", year)
		}
		return 42, nil
	}

	got, err := ParseRange("24::x1", 16, 5, firstFn)
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	want := Range{Year: 24, First: 42, Last: 57}
	if got != want {
		t.Errorf("ParseRange = %+v, want %+v", got, want)
	}

	// explicit first wins over the callback
	got, err = ParseRange("24:9:x1", 16, 5, firstFn)
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if got.First != 9 {
		t.Errorf("First = %d, want 9", got.First)
	}
}

func TestExpand(t *testing.T) {
	ranges := []Range{
		{Year: 23, First: 1, Last: 3},
		{Year: 24, First: 99, Last: 101},
	}
	labels := Expand(ranges, Options{Prefix: "ASN", Digits: 4})

	if len(labels) != 6 {
		t.Fatalf("Expand produced %d labels, want 6", len(labels))
	}

	first := labels[0]
	if first.Code != "ASN230001" {
		t.Errorf("Code = %q, want ASN230001", first.Code)
	}
	if first.ID != "0001" || first.Zeros != "000" {
		t.Errorf("ID/Zeros = %q/%q, want 0001/000", first.ID, first.Zeros)
	}
	if first.Color != Palette[23%len(Palette)] {
		t.Errorf("Color = %q, want %q", first.Color, Palette[23%len(Palette)])
	}

	// second range picks up right where it starts and pads to width
	l := labels[3]
	if l.Code != "ASN240099" || l.Zeros != "00" {
		t.Errorf("labels[3] = %+v, want code ASN240099 zeros 00", l)
	}

	// serial wider than the pad width keeps all digits
	wide := Expand([]Range{{Year: 0, First: 12345, Last: 12345}}, Options{Prefix: "ASN", Digits: 4})
	if wide[0].ID != "12345" || wide[0].Zeros != "" {
		t.Errorf("wide serial = %+v, want ID 12345 and no zeros", wide[0])
	}
}

func TestExpandDeterministic(t *testing.T) {
	ranges := []Range{{Year: 5, First: 1, Last: 80}}
	opts := Options{Prefix: "ASN", Digits: 4}

	a := Expand(ranges, opts)
	b := Expand(ranges, opts)
	if len(a) != len(b) {
		t.Fatalf("runs disagree on count: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("labels[%d] differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestExpandFourDigitYear(t *testing.T) {
	labels := Expand([]Range{{Year: 2023, First: 7, Last: 7}}, Options{Prefix: "ASN", Digits: 4})
	if labels[0].Code != "ASN230007" {
		t.Errorf("Code = %q, want ASN230007 (two-digit year badge)", labels[0].Code)
	}
}

func TestValidatePrefix(t *testing.T) {
	for _, prefix := range []string{"ASN", "asn", "A1", "INV-2024", "box_a"} {
		if err := ValidatePrefix(prefix); err != nil {
			t.Errorf("ValidatePrefix(%q) = %v, want nil", prefix, err)
		}
	}
	for _, prefix := range []string{"", "1ASN", "AS N", "ASN#", strings.Repeat("A", PrefixMaxLen+1)} {
		if err := ValidatePrefix(prefix); !errors.Is(err, ErrInvalidPrefix) {
			t.Errorf("ValidatePrefix(%q) = %v, want ErrInvalidPrefix", prefix, err)
		}
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"https://docs.example.com/asn", "https://docs.example.com/asn/"},
		{"https://docs.example.com/asn/", "https://docs.example.com/asn/"},
		{"http://bücher.example/a", "http://xn--bcher-kva.example/a/"},
		{"https://docs.example.com:8443", "https://docs.example.com:8443/"},
	}

	for _, tt := range tests {
		got, err := NormalizeBaseURL(tt.raw)
		if err != nil {
			t.Errorf("NormalizeBaseURL(%q) returned error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeBaseURL(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}

	for _, raw := range []string{"ftp://example.com/", "https://", "://bad"} {
		if _, err := NormalizeBaseURL(raw); !errors.Is(err, ErrInvalidBaseURL) {
			t.Errorf("NormalizeBaseURL(%q) error = %v, want ErrInvalidBaseURL", raw, err)
		}
	}
}
