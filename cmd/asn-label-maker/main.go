package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath string

	// Build information (injected by GoReleaser)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asn-label-maker",
		Short: "Generate printable ASN label sheets",
		Long:  "A tool for generating archive serial number (ASN) labels with QR codes as PDF sheets sized for Avery-style label paper, and for exporting the matching label manifests",
	}

	// Global flag for the sequence database path
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "sequence.db", "path to SQLite sequence database file")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newLayoutsCmd())
	rootCmd.AddCommand(newSequenceCmd())

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("asn-label-maker version %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built at: %s\n", date)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
