// Package manifest exports the generated label records as CSV or XLSX,
// for import into inventory systems or spreadsheet review.
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"asn-label-maker/internal/models"
)

// SheetName is the worksheet labels land on in XLSX output.
const SheetName = "Labels"

var header = []string{"serial", "year", "id", "code", "zeros", "color"}

func record(l models.Label) []string {
	return []string{
		strconv.Itoa(l.Serial),
		fmt.Sprintf("%02d", l.Year%100),
		l.ID,
		l.Code,
		l.Zeros,
		l.Color,
	}
}

// WriteCSV writes the manifest to a CSV file.
func WriteCSV(labels []models.Label, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, l := range labels {
		if err := writer.Write(record(l)); err != nil {
			return fmt.Errorf("failed to write record for %s: %w", l.Code, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes the manifest to an Excel file with a single sheet.
func WriteXLSX(labels []models.Label, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := setRow(f, 1, header); err != nil {
		return err
	}
	for i, l := range labels {
		if err := setRow(f, i+2, record(l)); err != nil {
			return err
		}
	}

	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to name cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
