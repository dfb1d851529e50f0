package main

import (
	"fmt"

	"github.com/aristath/kundali/internal/domain"
	"github.com/aristath/kundali/internal/modules/tables"
	"github.com/spf13/cobra"
)

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the embedded reference table version and dasha allotments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := tables.Default()
			if err != nil {
				return fmt.Errorf("failed to load reference tables: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", ref.Version)
			for _, p := range ref.DashaOrder() {
				fmt.Fprintf(out, "%-8s %5.1f years  aspects %v\n", p, ref.DashaYears(p), ref.AspectHouses(p))
			}
			for s := domain.Aries; s <= domain.Pisces; s++ {
				fmt.Fprintf(out, "%-12s lord %s\n", s, ref.SignLord(s))
			}
			a.log.Debug().Str("version", ref.Version).Msg("Printed reference tables")
			return nil
		},
	}
}
