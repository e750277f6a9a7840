package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newRmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete one entry (asks for confirmation)",
		Long:  "Delete one entry by id. The entry's values are preserved in the audit log.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id %q is not a number", args[0])
			}

			if !yes && !confirm(os.Stdin, os.Stderr, fmt.Sprintf("Delete entry %d?", id)) {
				fmt.Fprintln(os.Stderr, "Cancelled.")
				return nil
			}

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.entries.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Deleted entry %d (logged to audit trail).\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
