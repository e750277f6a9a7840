package models

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestEventKindValid(t *testing.T) {
	tests := []struct {
		kind EventKind
		want bool
	}{
		{EventInsert, true},
		{EventDelete, true},
		{EventReset, true},
		{EventKind("update"), false},
		{EventKind(""), false},
	}

	for _, tc := range tests {
		if got := tc.kind.Valid(); got != tc.want {
			t.Errorf("Valid(%q) = %v, want %v", tc.kind, got, tc.want)
		}
	}
}

func TestSnapshot(t *testing.T) {
	d := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	e := WasteEntry{ID: 1, Date: d, Business: "DAB", Stream: "ACN", QuantityKG: 300}

	snap := e.Snapshot()
	if !snap.Date.Equal(d) || snap.Business != "DAB" || snap.Stream != "ACN" || snap.QuantityKG != 300 {
		t.Errorf("Snapshot() = %+v, want copy of entry fields", snap)
	}
}

func TestValidationError(t *testing.T) {
	err := Invalid("business", "not in configured set")
	if err.Error() != "invalid business: not in configured set" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("IsValidation(err) = false, want true")
	}
	if !IsValidation(fmt.Errorf("adding entry: %w", err)) {
		t.Error("IsValidation(wrapped) = false, want true")
	}
	if IsValidation(ErrEntryNotFound) {
		t.Error("IsValidation(ErrEntryNotFound) = true, want false")
	}
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Persistence("insert entry", cause)

	if !IsPersistence(err) {
		t.Error("IsPersistence(err) = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if IsPersistence(cause) {
		t.Error("IsPersistence(cause) = true, want false")
	}
}
