package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the whole inventory (asks for confirmation)",
		Long:  "Clear every current entry. Each cleared entry is preserved in the audit log as a reset event.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(os.Stdin, os.Stderr, "Reset the inventory? All current entries will be cleared.") {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			cleared, err := a.entries.Reset(ctx)
			if err != nil {
				return err
			}

			if flagFmt == "quiet" {
				fmt.Println(cleared)
				return nil
			}
			fmt.Printf("Inventory reset: %d entries cleared and preserved in the audit log.\n", cleared)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
