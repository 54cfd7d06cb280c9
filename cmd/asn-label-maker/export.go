package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asn-label-maker/internal/manifest"
)

func newExportCmd() *cobra.Command {
	var (
		n      numberingOpts
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export <range>...",
		Short: "Export the label manifest as CSV or XLSX",
		Long:  "Expand the given ranges and write the label text manifest without rendering a PDF. Ranges use the same [year]:[first]:[last] form as generate.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args, n, output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default labels.<format>)")
	cmd.Flags().StringVar(&format, "format", "csv", "output format (csv, xlsx)")
	cmd.Flags().StringVar(&n.layoutCode, "layout", "4732", "label sheet layout code (sizes full-sheet ranges)")
	cmd.Flags().StringVar(&n.layoutFile, "layout-file", "", "YAML file with additional layout definitions")
	cmd.Flags().StringVar(&n.prefix, "prefix", "ASN", "code prefix")
	cmd.Flags().IntVar(&n.digits, "digits", 4, "zero-pad width for the serial")
	cmd.Flags().BoolVar(&n.resume, "continue", false, "continue numbering after the serial stored in the sequence db")

	return cmd
}

func runExport(args []string, n numberingOpts, output, format string) error {
	labels, _, err := expandLabels(args, n)
	if err != nil {
		return err
	}

	if output == "" {
		output = "labels." + format
	}

	switch format {
	case "csv":
		err = manifest.WriteCSV(labels, output)
	case "xlsx":
		err = manifest.WriteXLSX(labels, output)
	default:
		return fmt.Errorf("unknown format: %s (want csv or xlsx)", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d label(s) -> %s\n", len(labels), output)
	return nil
}
