package models

import "time"

// WasteEntry is a single disposal record in the current inventory.
type WasteEntry struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	Business   string    `json:"business"`
	Stream     string    `json:"stream"`
	QuantityKG float64   `json:"quantity_kg"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddEntryRequest carries the caller-supplied fields for a new entry.
// Date is an ISO 8601 calendar date (YYYY-MM-DD); validation happens in
// the service layer before the store is touched.
type AddEntryRequest struct {
	Date       string  `json:"date"`
	Business   string  `json:"business"`
	Stream     string  `json:"stream"`
	QuantityKG float64 `json:"quantity_kg"`
}

// Period selects entries by calendar year and optionally month.
// Month 0 means the whole year.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
}

// UsageSummary is the capacity view for one period.
type UsageSummary struct {
	Period        Period  `json:"period"`
	MonthlyTotal  float64 `json:"monthly_total_kg"`
	AnnualTotal   float64 `json:"annual_total_kg"`
	CapacityKG    float64 `json:"capacity_kg"`
	UsageFraction float64 `json:"usage_fraction"`
	OverThreshold bool    `json:"over_threshold"`
}
