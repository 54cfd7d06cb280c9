package models

// Label is a single label cell on a sheet.
type Label struct {
	Year   int    // numbering year, shown as a two-digit badge
	Serial int    // sequence number within the year
	Code   string // full code carried by the QR, e.g. "ASN230042"
	ID     string // zero-padded serial, e.g. "0042"
	Zeros  string // padding portion of ID, rendered dimmed
	Color  string // hex color for the serial digits
}
