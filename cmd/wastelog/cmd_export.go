package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		outPath string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full audit trail",
		Long:  "Export every audit record in insertion order, as CSV (default) or JSON.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "csv" && format != "json" {
				return fmt.Errorf("unknown export format %q (want csv or json)", format)
			}

			var w io.Writer = os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			var n int
			if format == "json" {
				n, err = a.audit.ExportJSON(ctx, w)
			} else {
				n, err = a.audit.ExportCSV(ctx, w)
			}
			if err != nil {
				return err
			}

			if outPath != "" {
				fmt.Fprintf(os.Stderr, "Exported %d audit records to %s.\n", n, outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&format, "export-format", "csv", "Export format: csv|json")

	return cmd
}
