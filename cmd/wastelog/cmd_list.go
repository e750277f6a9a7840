package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wastelabs/wastelog/internal/models"
)

func newListCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries for a period (current month by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := defaultPeriod(year, month)

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			entries, err := a.entries.ListForPeriod(ctx, p)
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				formatTable(entryHeaders, entryRows(entries))
				return nil
			}
			output(entries, "")
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current; 0 with --year lists the whole year)")

	return cmd
}

// defaultPeriod fills in the current month when neither flag is given.
// An explicit --year without --month means the whole year.
func defaultPeriod(year, month int) models.Period {
	now := time.Now()
	if year == 0 && month == 0 {
		return models.Period{Year: now.Year(), Month: int(now.Month())}
	}
	if year == 0 {
		year = now.Year()
	}
	return models.Period{Year: year, Month: month}
}
