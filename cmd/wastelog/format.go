package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wastelabs/wastelog/internal/models"
)

func formatJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode json: %v\n", err)
		os.Exit(1)
	}
}

func formatTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = fmt.Sprintf("%-*s", w, cell)
		}
		fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	seps := make([]string, len(headers))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	printRow(seps)
	for _, row := range rows {
		printRow(row)
	}
}

func formatQuiet(id string) {
	fmt.Println(id)
}

func output(v any, quietVal string) {
	switch flagFmt {
	case "quiet":
		formatQuiet(quietVal)
	case "json":
		formatJSON(v)
	default:
		formatJSON(v)
	}
}

func entryRows(entries []models.WasteEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.Date.Format(time.DateOnly),
			e.Business,
			e.Stream,
			fmt.Sprintf("%.2f", e.QuantityKG),
		})
	}
	return rows
}

var entryHeaders = []string{"ID", "DATE", "BUSINESS", "STREAM", "KG"}

func auditRows(records []models.AuditRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		date, business, stream, quantity := "", "", "", ""
		if r.EntryDate != nil {
			date = r.EntryDate.Format(time.DateOnly)
		}
		if r.Business != nil {
			business = *r.Business
		}
		if r.Stream != nil {
			stream = *r.Stream
		}
		if r.QuantityKG != nil {
			quantity = fmt.Sprintf("%.2f", *r.QuantityKG)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			string(r.Kind),
			date,
			business,
			stream,
			quantity,
			r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return rows
}

var auditHeaders = []string{"ID", "EVENT", "DATE", "BUSINESS", "STREAM", "KG", "AT"}

// progressBar renders a fixed-width ASCII usage bar for the status view.
func progressBar(fraction float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
