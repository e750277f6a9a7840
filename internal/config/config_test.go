package config

import (
	"strings"
	"testing"
)

const testDBURL = "postgres://localhost:5432/wastelog_test"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", testDBURL)
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.CapacityKG != DefaultCapacityKG {
		t.Errorf("CapacityKG = %v, want %v", cfg.CapacityKG, DefaultCapacityKG)
	}
	if len(cfg.Businesses) != 2 || cfg.Businesses[0] != "DAB" || cfg.Businesses[1] != "CTI" {
		t.Errorf("Businesses = %v, want [DAB CTI]", cfg.Businesses)
	}
	if len(cfg.Streams) != 2 || cfg.Streams[0] != "ACN" || cfg.Streams[1] != "DCM" {
		t.Errorf("Streams = %v, want [ACN DCM]", cfg.Streams)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded without DATABASE_URL")
	}
}

func TestLoadRejectsBadDatabaseScheme(t *testing.T) {
	t.Setenv("DATABASE_URL", "mysql://localhost:3306/waste")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "scheme") {
		t.Fatalf("Load = %v, want scheme error", err)
	}
}

func TestLoadCapacity(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "custom", raw: "2500.5", want: 2500.5},
		{name: "zero means no limit", raw: "0", want: 0},
		{name: "negative means no limit", raw: "-1", want: -1},
		{name: "not a number", raw: "lots", wantErr: true},
		{name: "nan rejected", raw: "NaN", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("WASTELOG_CAPACITY_KG", tc.raw)

			cfg, err := Load()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Load(%q) succeeded, want error", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.CapacityKG != tc.want {
				t.Errorf("CapacityKG = %v, want %v", cfg.CapacityKG, tc.want)
			}
		})
	}
}

func TestLoadLabelSets(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WASTELOG_BUSINESSES", " DAB , CTI , R&D ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Businesses) != 3 || cfg.Businesses[2] != "R&D" {
		t.Errorf("Businesses = %v, want trimmed three labels", cfg.Businesses)
	}
}

func TestLoadRejectsDuplicateLabels(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WASTELOG_STREAMS", "ACN,DCM,ACN")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted duplicate stream labels")
	}
}

func TestLoadRejectsEmptyLabelSet(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WASTELOG_BUSINESSES", " , ")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted empty business set")
	}
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted invalid log level")
	}
}

func TestSecretRedaction(t *testing.T) {
	s := Secret("postgres://user:hunter2@db/waste")

	if s.String() != "[REDACTED]" {
		t.Errorf("String() = %q", s.String())
	}
	if got, _ := s.MarshalText(); string(got) != "[REDACTED]" {
		t.Errorf("MarshalText() = %q", got)
	}
	if s.Value() != "postgres://user:hunter2@db/waste" {
		t.Errorf("Value() lost the secret")
	}
}
