package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wastelabs/wastelog/internal/models"
)

func newAuditCmd() *cobra.Command {
	var (
		limit  int
		kind   string
		since  string
		offset int
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the audit trail, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := models.AuditQueryOpts{
				Kind:   models.EventKind(kind),
				Limit:  limit,
				Offset: offset,
			}

			if kind != "" && !opts.Kind.Valid() {
				return fmt.Errorf("unknown event kind %q (want insert, delete, or reset)", kind)
			}

			if since != "" {
				ts, err := time.Parse(time.DateOnly, since)
				if err != nil {
					return fmt.Errorf("--since %q is not a YYYY-MM-DD date", since)
				}
				opts.Since = &ts
			}

			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			records, hasMore, err := a.audit.Query(ctx, opts)
			if err != nil {
				return err
			}

			if flagFmt == "table" {
				formatTable(auditHeaders, auditRows(records))
				if hasMore {
					fmt.Println("(more records; use --offset or raise --limit)")
				}
				return nil
			}
			output(records, "")
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum records to show")
	cmd.Flags().StringVar(&kind, "kind", "", "Filter by event kind: insert|delete|reset")
	cmd.Flags().StringVar(&since, "since", "", "Only events on or after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip this many records")

	return cmd
}
