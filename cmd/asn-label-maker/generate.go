package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"asn-label-maker/internal/render"
	"asn-label-maker/internal/spec"
)

func newGenerateCmd() *cobra.Command {
	var (
		n       numberingOpts
		output  string
		baseURL string
		fontDir string
		down    bool
		skip    int
		track   bool
	)

	cmd := &cobra.Command{
		Use:   "generate <range>...",
		Short: "Render label sheets to a PDF",
		Long: "Render ASN labels to a PDF sized for the selected label sheet. Each range has the form [year]:[first]:[last]; " +
			"<last> may be a number, 'xN' for N full columns, or empty for one full sheet. " +
			"Ranges are concatenated in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(args, n, output, baseURL, fontDir, down, skip, track)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "labels.pdf", "output PDF path ('.pdf' appended when missing)")
	cmd.Flags().StringVar(&n.layoutCode, "layout", "4732", "label sheet layout code")
	cmd.Flags().StringVar(&n.layoutFile, "layout-file", "", "YAML file with additional layout definitions")
	cmd.Flags().StringVar(&n.prefix, "prefix", "ASN", "code prefix")
	cmd.Flags().IntVar(&n.digits, "digits", 4, "zero-pad width for the serial")
	cmd.Flags().BoolVar(&n.resume, "continue", false, "continue numbering after the serial stored in the sequence db")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "URL prefix for the QR payload (QR encodes <base-url><code>)")
	cmd.Flags().StringVar(&fontDir, "font-dir", "", "directory holding the DejaVu Sans Mono TTF files")
	cmd.Flags().BoolVar(&down, "down", false, "fill columns top-to-bottom instead of rows left-to-right")
	cmd.Flags().IntVar(&skip, "skip", 0, "leave the first N cells of the first page blank")
	cmd.Flags().BoolVar(&track, "track", false, "record the highest issued serial into the sequence db")

	return cmd
}

func runGenerate(args []string, n numberingOpts, output, baseURL, fontDir string, down bool, skip int, track bool) error {
	labels, sheet, err := expandLabels(args, n)
	if err != nil {
		return err
	}

	base, err := spec.NormalizeBaseURL(baseURL)
	if err != nil {
		return err
	}

	regular, bold, err := render.FindFonts(fontDir)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(output, ".pdf") {
		output += ".pdf"
	}

	opts := render.Options{
		Sheet:       sheet,
		FontRegular: regular,
		FontBold:    bold,
		BaseURL:     base,
		Down:        down,
		Skip:        skip,
	}
	if err := render.Render(labels, opts, output); err != nil {
		return err
	}

	if track {
		if err := recordIssued(labels, n.prefix); err != nil {
			return err
		}
	}

	pages := render.PageCount(len(labels), sheet.Cells(), skip)
	fmt.Printf("Generated %d label(s) on %d page(s) (layout %s) -> %s\n", len(labels), pages, sheet.Code, output)
	return nil
}
