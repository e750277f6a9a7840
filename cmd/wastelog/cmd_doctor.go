package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wastelabs/wastelog/internal/config"
	"github.com/wastelabs/wastelog/internal/dbpool"
)

type checkResult struct {
	name string
	ok   bool
	info string
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, connectivity, and schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolveConfig()

			results := []checkResult{}
			failed := false

			cfg, err := config.Load()
			if err != nil {
				printCheck(checkResult{name: "config", info: err.Error()})
				return fmt.Errorf("doctor found problems")
			}
			results = append(results, checkResult{
				name: "config",
				ok:   true,
				info: fmt.Sprintf("capacity %.0f kg, %d businesses, %d streams", cfg.CapacityKG, len(cfg.Businesses), len(cfg.Streams)),
			})

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
			if err != nil {
				results = append(results, checkResult{name: "database", info: err.Error()})
				for _, r := range results {
					printCheck(r)
				}
				return fmt.Errorf("doctor found problems")
			}
			defer pool.Close()
			results = append(results, checkResult{name: "database", ok: true, info: "connected"})

			// The remaining checks are independent reads.
			var (
				schema  checkResult
				volumes checkResult
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				schema = checkSchema(gctx, pool)
				return nil
			})
			g.Go(func() error {
				volumes = checkVolumes(gctx, pool)
				return nil
			})
			g.Wait() //nolint:errcheck // goroutines report through their results.
			results = append(results, schema, volumes)

			for _, r := range results {
				printCheck(r)
				if !r.ok {
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("doctor found problems")
			}
			fmt.Println("All checks passed.")
			return nil
		},
	}
}

// checkSchema verifies both ledger tables exist.
func checkSchema(ctx context.Context, pool *dbpool.Pool) checkResult {
	for _, table := range []string{"waste_entries", "audit_log"} {
		var regclass *string
		err := pool.QueryRow(ctx, "SELECT to_regclass($1)::text", table).Scan(&regclass)
		if err != nil {
			return checkResult{name: "schema", info: err.Error()}
		}
		if regclass == nil {
			return checkResult{name: "schema", info: fmt.Sprintf("table %s missing (run 'wastelog init' or any command to migrate)", table)}
		}
	}
	return checkResult{name: "schema", ok: true, info: "waste_entries, audit_log present"}
}

// checkVolumes reports row counts so drift between the inventory and the
// audit trail is visible at a glance.
func checkVolumes(ctx context.Context, pool *dbpool.Pool) checkResult {
	var entries, audits int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM waste_entries").Scan(&entries); err != nil {
		return checkResult{name: "volumes", info: err.Error()}
	}
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM audit_log").Scan(&audits); err != nil {
		return checkResult{name: "volumes", info: err.Error()}
	}
	return checkResult{name: "volumes", ok: true, info: fmt.Sprintf("%d entries, %d audit records", entries, audits)}
}

func printCheck(r checkResult) {
	status := "FAIL"
	if r.ok {
		status = "ok"
	}
	fmt.Fprintf(os.Stdout, "%-10s %-4s %s\n", r.name, status, r.info)
}
