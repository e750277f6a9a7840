package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show capacity usage for a period (current month by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := defaultPeriod(year, month)

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			sum, err := a.entries.UsageSummary(ctx, p)
			if err != nil {
				return err
			}

			if flagFmt != "table" {
				output(sum, fmt.Sprintf("%.4f", sum.UsageFraction))
				return nil
			}

			label := fmt.Sprintf("%04d-%02d", p.Year, p.Month)
			if p.Month == 0 {
				label = fmt.Sprintf("%04d", p.Year)
			}

			fmt.Printf("Period %s: %.2f kg", label, sum.MonthlyTotal)
			if sum.CapacityKG > 0 {
				fmt.Printf(" of %.2f kg (%.1f%%)\n", sum.CapacityKG, sum.UsageFraction*100)
				fmt.Printf("%s\n", progressBar(sum.UsageFraction, 40))
			} else {
				fmt.Printf(" (no capacity limit configured)\n")
			}

			if sum.OverThreshold {
				fmt.Printf("WARNING: on-site capacity at %.1f%% (threshold 80%%)\n", sum.UsageFraction*100)
			}

			fmt.Printf("Annual total %04d: %.2f kg\n", p.Year, sum.AnnualTotal)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Calendar year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current; 0 with --year evaluates the whole year)")

	return cmd
}
