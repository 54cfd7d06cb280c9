// Package layout describes label-sheet templates: the page, the label
// grid and the geometry needed to place a label cell. All lengths are
// millimetres.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownLayout = errors.New("unknown layout")

// Sheet is one label-sheet template.
type Sheet struct {
	Code       string
	PageWidth  float64
	PageHeight float64
	MarginLeft float64
	MarginTop  float64
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	PitchX     float64 // horizontal distance between cell origins
	PitchY     float64 // vertical distance between cell origins
}

// Cells returns the number of labels per page.
func (s Sheet) Cells() int {
	return s.Rows * s.Cols
}

// CellOrigin returns the top-left corner of cell i (0-based, within one
// page). Cells fill left-to-right by default, top-to-bottom when down is
// set.
func (s Sheet) CellOrigin(i int, down bool) (x, y float64) {
	var row, col int
	if down {
		col = i / s.Rows
		row = i % s.Rows
	} else {
		row = i / s.Cols
		col = i % s.Cols
	}
	return s.MarginLeft + float64(col)*s.PitchX, s.MarginTop + float64(row)*s.PitchY
}

// Validate checks the sheet geometry: positive dimensions, pitch at
// least the cell size, and a grid that fits on the page.
func (s Sheet) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return fmt.Errorf("layout %s: need at least one row and column", s.Code)
	}
	if s.PageWidth <= 0 || s.PageHeight <= 0 || s.CellWidth <= 0 || s.CellHeight <= 0 {
		return fmt.Errorf("layout %s: page and cell dimensions must be positive", s.Code)
	}
	if s.MarginLeft < 0 || s.MarginTop < 0 {
		return fmt.Errorf("layout %s: margins must not be negative", s.Code)
	}
	if s.PitchX < s.CellWidth || s.PitchY < s.CellHeight {
		return fmt.Errorf("layout %s: pitch smaller than cell size", s.Code)
	}

	// allow a little slack for rounded template measurements
	const eps = 0.1
	right := s.MarginLeft + float64(s.Cols-1)*s.PitchX + s.CellWidth
	bottom := s.MarginTop + float64(s.Rows-1)*s.PitchY + s.CellHeight
	if right > s.PageWidth+eps || bottom > s.PageHeight+eps {
		return fmt.Errorf("layout %s: %dx%d grid does not fit a %.0fx%.0f mm page",
			s.Code, s.Cols, s.Rows, s.PageWidth, s.PageHeight)
	}
	return nil
}

// Registry maps layout codes to sheets.
type Registry map[string]Sheet

// Builtin returns a fresh registry of the built-in sheet templates.
func Builtin() Registry {
	r := make(Registry, len(builtin))
	for code, s := range builtin {
		r[code] = s
	}
	return r
}

// Get looks up a layout code.
func (r Registry) Get(code string) (Sheet, error) {
	s, ok := r[code]
	if !ok {
		return Sheet{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLayout, code, strings.Join(r.Codes(), ", "))
	}
	return s, nil
}

// Codes returns all known layout codes, sorted.
func (r Registry) Codes() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Built-in templates, all on A4. Margins center the grid on the page.
var builtin = map[string]Sheet{
	// Avery Zweckform 4732, 35.6 x 16.9 mm, 80 per sheet
	"4732": {
		Code:      "4732",
		PageWidth: 210, PageHeight: 297,
		MarginLeft: 16, MarginTop: 13.3,
		Rows: 16, Cols: 5,
		CellWidth: 35.6, CellHeight: 16.9,
		PitchX: 35.6, PitchY: 16.9,
	},
	// Avery Zweckform 4731, 25.4 x 10 mm, 189 per sheet
	"4731": {
		Code:      "4731",
		PageWidth: 210, PageHeight: 297,
		MarginLeft: 16.1, MarginTop: 13.5,
		Rows: 27, Cols: 7,
		CellWidth: 25.4, CellHeight: 10,
		PitchX: 25.4, PitchY: 10,
	},
	// Avery Zweckform 3475, 70 x 36 mm, 24 per sheet
	"3475": {
		Code:      "3475",
		PageWidth: 210, PageHeight: 297,
		MarginLeft: 0, MarginTop: 4.5,
		Rows: 8, Cols: 3,
		CellWidth: 70, CellHeight: 36,
		PitchX: 70, PitchY: 36,
	},
	// Avery L7157, 64 x 24.3 mm, 33 per sheet, guttered columns
	"L7157": {
		Code:      "L7157",
		PageWidth: 210, PageHeight: 297,
		MarginLeft: 6.4, MarginTop: 14.9,
		Rows: 11, Cols: 3,
		CellWidth: 64, CellHeight: 24.3,
		PitchX: 66.55, PitchY: 24.3,
	},
}
