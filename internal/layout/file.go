package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSheet mirrors Sheet for YAML layout files. Pitch defaults to the
// cell size when omitted.
type fileSheet struct {
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`
	MarginLeft float64 `yaml:"margin_left"`
	MarginTop  float64 `yaml:"margin_top"`
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	PitchX     float64 `yaml:"pitch_x"`
	PitchY     float64 `yaml:"pitch_y"`
}

// LoadFile merges sheet definitions from a YAML file into the registry.
// The file maps layout codes to geometry; entries may shadow built-in
// codes. Every entry is validated before the registry is touched.
func (r Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read layout file: %w", err)
	}

	var entries map[string]fileSheet
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse layout file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("layout file %s defines no layouts", path)
	}

	loaded := make([]Sheet, 0, len(entries))
	for code, e := range entries {
		s := Sheet{
			Code:       code,
			PageWidth:  e.PageWidth,
			PageHeight: e.PageHeight,
			MarginLeft: e.MarginLeft,
			MarginTop:  e.MarginTop,
			Rows:       e.Rows,
			Cols:       e.Cols,
			CellWidth:  e.CellWidth,
			CellHeight: e.CellHeight,
			PitchX:     e.PitchX,
			PitchY:     e.PitchY,
		}
		if s.PitchX == 0 {
			s.PitchX = s.CellWidth
		}
		if s.PitchY == 0 {
			s.PitchY = s.CellHeight
		}
		if err := s.Validate(); err != nil {
			return fmt.Errorf("layout file %s: %w", path, err)
		}
		loaded = append(loaded, s)
	}

	for _, s := range loaded {
		r[s.Code] = s
	}
	return nil
}
