package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrFontNotFound = errors.New("font not found")

// Labels are set in DejaVu Sans Mono so every code lines up the same way.
const (
	fontRegularFile = "DejaVuSansMono.ttf"
	fontBoldFile    = "DejaVuSansMono-Bold.ttf"
)

// Directories searched when no --font-dir is given.
var fontSearchDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
	"/Library/Fonts",
}

// FindFonts resolves the regular and bold label faces. When dir is
// non-empty only that directory is searched, otherwise the well-known
// system font directories are tried in order.
func FindFonts(dir string) (regular, bold string, err error) {
	dirs := fontSearchDirs
	if dir != "" {
		dirs = []string{dir}
	}

	regular, err = findFont(dirs, fontRegularFile)
	if err != nil {
		return "", "", err
	}
	bold, err = findFont(dirs, fontBoldFile)
	if err != nil {
		return "", "", err
	}
	return regular, bold, nil
}

func findFont(dirs []string, name string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s (searched %s; use --font-dir)",
		ErrFontNotFound, name, strings.Join(dirs, ", "))
}
