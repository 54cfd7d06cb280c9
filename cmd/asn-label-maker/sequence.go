package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asn-label-maker/internal/sequence"
)

func newSequenceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sequence",
		Short: "Show the serial counters stored in the sequence db",
		RunE:  runSequence,
	}
}

func runSequence(cmd *cobra.Command, args []string) error {
	store, err := sequence.New(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	counters, err := store.All()
	if err != nil {
		return err
	}

	if len(counters) == 0 {
		fmt.Println("No serial counters recorded yet")
		return nil
	}

	for _, c := range counters {
		fmt.Printf("%s year %02d: last serial %d\n", c.Prefix, c.Year%100, c.LastSerial)
	}
	return nil
}
