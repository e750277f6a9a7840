package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wastelabs/wastelog/internal/models"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <date> <business> <stream> <kg>",
		Short: "Log a waste disposal entry",
		Long:  "Log one disposal entry. Date is YYYY-MM-DD; business and stream must be in the configured sets.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("quantity %q is not a number", args[3])
			}

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			entry, err := a.entries.Add(ctx, models.AddEntryRequest{
				Date:       args[0],
				Business:   args[1],
				Stream:     args[2],
				QuantityKG: quantity,
			})
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				fmt.Printf("Added entry %d: %s %s/%s %.2f kg\n",
					entry.ID, args[0], entry.Business, entry.Stream, entry.QuantityKG)
				return nil
			}
			output(entry, strconv.FormatInt(entry.ID, 10))
			return nil
		},
	}
}
