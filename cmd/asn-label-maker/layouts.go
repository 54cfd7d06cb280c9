package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asn-label-maker/internal/layout"
)

func newLayoutsCmd() *cobra.Command {
	var layoutFile string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List known label sheet layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayouts(layoutFile)
		},
	}

	cmd.Flags().StringVar(&layoutFile, "layout-file", "", "YAML file with additional layout definitions")

	return cmd
}

func runLayouts(layoutFile string) error {
	registry := layout.Builtin()
	if layoutFile != "" {
		if err := registry.LoadFile(layoutFile); err != nil {
			return err
		}
	}

	for _, code := range registry.Codes() {
		s := registry[code]
		fmt.Printf("%-8s %2d x %-2d cells of %5.1f x %4.1f mm on %3.0f x %3.0f mm (%d labels/sheet)\n",
			s.Code, s.Cols, s.Rows, s.CellWidth, s.CellHeight, s.PageWidth, s.PageHeight, s.Cells())
	}
	return nil
}
