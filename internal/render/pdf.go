// Package render draws label sheets as PDF documents.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signintech/gopdf"
	qrcode "github.com/skip2/go-qrcode"

	"asn-label-maker/internal/layout"
	"asn-label-maker/internal/models"
)

const mmToPt = 72.0 / 25.4

// Font family names as registered with the document.
const (
	familyRegular = "labelmono"
	familyBold    = "labelmono-bold"
)

func mm(v float64) float64 { return v * mmToPt }

// Options configure one rendering run.
type Options struct {
	Sheet       layout.Sheet
	FontRegular string // path to the regular TTF face
	FontBold    string // path to the bold TTF face
	BaseURL     string // prepended to the code in the QR payload
	Down        bool   // fill columns top-to-bottom
	Skip        int    // blank cells at the start of the first page
}

// PageCount returns the number of pages n labels occupy on a sheet with
// the given cells per page, with skip blank cells on the first page.
func PageCount(n, cells, skip int) int {
	if n <= 0 {
		return 0
	}
	return (n + skip + cells - 1) / cells
}

// Render writes the labels as a PDF to path, tiling them page by page
// according to the sheet template.
func Render(labels []models.Label, opts Options, path string) error {
	sheet := opts.Sheet
	if err := sheet.Validate(); err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no labels to render")
	}
	if opts.Skip < 0 || opts.Skip >= sheet.Cells() {
		return fmt.Errorf("skip must be between 0 and %d for layout %s", sheet.Cells()-1, sheet.Code)
	}

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: mm(sheet.PageWidth), H: mm(sheet.PageHeight)}})

	if err := pdf.AddTTFFont(familyRegular, opts.FontRegular); err != nil {
		return fmt.Errorf("failed to load font %s: %w", opts.FontRegular, err)
	}
	if err := pdf.AddTTFFont(familyBold, opts.FontBold); err != nil {
		return fmt.Errorf("failed to load font %s: %w", opts.FontBold, err)
	}

	cells := sheet.Cells()
	lastPage := -1
	for i, label := range labels {
		pos := i + opts.Skip
		if page := pos / cells; page != lastPage {
			pdf.AddPage()
			lastPage = page
		}

		x, y := sheet.CellOrigin(pos%cells, opts.Down)
		if err := drawLabel(pdf, label, x, y, sheet.CellWidth, sheet.CellHeight, opts.BaseURL); err != nil {
			return err
		}
	}

	if err := pdf.WritePdf(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// drawLabel draws one label into the cell at (x, y), all in mm. The
// plate: QR code on the left, an outlined text box on the right with its
// left border knocked out, the year badge on the upper text row and the
// padded serial on the lower one.
func drawLabel(pdf *gopdf.GoPdf, l models.Label, x, y, w, h float64, baseURL string) error {
	payload := l.Code
	if baseURL != "" {
		payload = baseURL + l.Code
	}
	qr, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to encode QR for %s: %w", l.Code, err)
	}
	qr.DisableBorder = true

	qrSide := h - 2
	if err := pdf.ImageFrom(qr.Image(256), mm(x+2), mm(y+1), &gopdf.Rect{W: mm(qrSide), H: mm(qrSide)}); err != nil {
		return fmt.Errorf("failed to place QR for %s: %w", l.Code, err)
	}

	boxX := x + 2 + qrSide + 1.2
	boxY := y + 1
	boxW := w - (2 + qrSide + 1.2) - 1.6
	boxH := h - 2

	pdf.SetLineWidth(mm(0.4))
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetFillColor(0xe6, 0xfe, 0xff)
	pdf.RectFromUpperLeftWithStyle(mm(boxX), mm(boxY), mm(boxW), mm(boxH), "FD")

	// knock out the left border towards the QR
	pdf.SetFillColor(255, 255, 255)
	pdf.RectFromUpperLeftWithStyle(mm(boxX-1), mm(y), mm(1.5), mm(h), "F")

	size := mm(boxH * 0.37)
	rightX := mm(boxX + boxW - 1.2)
	yearTop := mm(boxY + boxH*0.08)
	serialTop := mm(boxY + boxH*0.52)

	pdf.SetTextColor(0, 0, 0)
	if err := drawRightAligned(pdf, familyBold, size, rightX, yearTop, fmt.Sprintf("%02d", l.Year%100)); err != nil {
		return err
	}

	// dimmed padding, then the serial in the year color, sharing a right edge
	serial := strconv.Itoa(l.Serial)
	if err := pdf.SetFont(familyBold, "", size); err != nil {
		return fmt.Errorf("failed to select font: %w", err)
	}
	serialW, err := pdf.MeasureTextWidth(serial)
	if err != nil {
		return fmt.Errorf("failed to measure %q: %w", serial, err)
	}

	if l.Zeros != "" {
		pdf.SetTextColor(0xaa, 0xaa, 0xaa)
		if err := drawRightAligned(pdf, familyRegular, size, rightX-serialW, serialTop, l.Zeros); err != nil {
			return err
		}
	}

	r, g, b := hexColor(l.Color)
	pdf.SetTextColor(r, g, b)
	if err := pdf.SetFont(familyBold, "", size); err != nil {
		return fmt.Errorf("failed to select font: %w", err)
	}
	pdf.SetX(rightX - serialW)
	pdf.SetY(serialTop)
	if err := pdf.Cell(nil, serial); err != nil {
		return fmt.Errorf("failed to draw serial %s: %w", serial, err)
	}
	return nil
}

// drawRightAligned draws text with its right edge at rightX and its top
// at topY, in the given face.
func drawRightAligned(pdf *gopdf.GoPdf, family string, size, rightX, topY float64, text string) error {
	if err := pdf.SetFont(family, "", size); err != nil {
		return fmt.Errorf("failed to select font: %w", err)
	}
	w, err := pdf.MeasureTextWidth(text)
	if err != nil {
		return fmt.Errorf("failed to measure %q: %w", text, err)
	}
	pdf.SetX(rightX - w)
	pdf.SetY(topY)
	if err := pdf.Cell(nil, text); err != nil {
		return fmt.Errorf("failed to draw %q: %w", text, err)
	}
	return nil
}

// hexColor parses "#rrggbb"; unparseable input falls back to black.
func hexColor(s string) (r, g, b uint8) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
