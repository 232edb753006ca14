package config

import (
	"os"
	"path/filepath"
	"testing"

	"solar-quote/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Quote.DataFile != "dados.json" {
		t.Errorf("DataFile = %q", cfg.Quote.DataFile)
	}
	if cfg.Quote.CostPerKW != 5000 || cfg.Quote.KWhPerKW != 150 {
		t.Errorf("unexpected rates: %+v", cfg.Quote)
	}
	if cfg.Quote.ProjectionYears != 10 {
		t.Errorf("ProjectionYears = %d", cfg.Quote.ProjectionYears)
	}
}

func TestSaveThenLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Quote.CostPerKW = 4200
	cfg.Contact.URL = "https://example.com/contact"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Quote.CostPerKW != 4200 {
		t.Errorf("CostPerKW = %v", loaded.Quote.CostPerKW)
	}
	if loaded.Contact.URL != "https://example.com/contact" {
		t.Errorf("Contact.URL = %q", loaded.Contact.URL)
	}
	if loaded.Quote.KWhPerKW != 150 {
		t.Errorf("KWhPerKW lost its default: %v", loaded.Quote.KWhPerKW)
	}
}

func TestLoadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.hcl")
	src := `
data_file   = "quote.json"
cost_per_kw = 4800
contact_url = "https://example.com"
log_level   = "debug"
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Quote.DataFile != "quote.json" {
		t.Errorf("DataFile = %q", cfg.Quote.DataFile)
	}
	if cfg.Quote.CostPerKW != 4800 {
		t.Errorf("CostPerKW = %v", cfg.Quote.CostPerKW)
	}
	if cfg.Quote.KWhPerKW != 150 {
		t.Errorf("unset attribute should keep default, got %v", cfg.Quote.KWhPerKW)
	}
	if cfg.Contact.URL != "https://example.com" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"quote":`},
		{"zero cost per kw", `{"quote":{"cost_per_kw":0}}`},
		{"negative kwh per kw", `{"quote":{"kwh_per_kw":-1}}`},
		{"zero horizon", `{"quote":{"projection_years":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected %s, got %v", errors.TypeConfig, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDataFile, "/tmp/other.json")
	t.Setenv(EnvContactURL, "https://example.org")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvAddr, ":9090")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Quote.DataFile != "/tmp/other.json" {
		t.Errorf("DataFile = %q", cfg.Quote.DataFile)
	}
	if cfg.Contact.URL != "https://example.org" {
		t.Errorf("Contact.URL = %q", cfg.Contact.URL)
	}
	if cfg.Logging.Level != "debug" || cfg.Server.Addr != ":9090" {
		t.Errorf("unexpected overrides: %+v", cfg)
	}
}
