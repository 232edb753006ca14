// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"

	"solar-quote/internal/errors"
	"solar-quote/internal/logging"
)

// Environment variables that override file configuration
const (
	EnvDataFile   = "SOLARQUOTE_DATA_FILE"
	EnvContactURL = "SOLARQUOTE_CONTACT_URL"
	EnvLogLevel   = "SOLARQUOTE_LOG_LEVEL"
	EnvAddr       = "SOLARQUOTE_ADDR"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Quote contains estimator settings
	Quote QuoteConfig `json:"quote"`

	// Contact contains the contact link
	Contact ContactConfig `json:"contact"`

	// Server contains HTTP API settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// QuoteConfig contains estimator settings
type QuoteConfig struct {
	// DataFile is where the quotation record is persisted
	DataFile string `json:"data_file"`

	// CostPerKW is the installed cost of one kW of capacity
	CostPerKW float64 `json:"cost_per_kw"`

	// KWhPerKW is the monthly energy one kW of panels produces
	KWhPerKW float64 `json:"kwh_per_kw"`

	// MinimumCapacityKW is the smallest system that can be quoted
	MinimumCapacityKW float64 `json:"minimum_capacity_kw"`

	// ProjectionYears is the comparison chart horizon
	ProjectionYears int `json:"projection_years"`

	// Currency is the display currency code
	Currency string `json:"currency"`
}

// ContactConfig contains the contact link settings
type ContactConfig struct {
	// URL is opened by the contact menu option
	URL string `json:"url"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// AllowedOrigins are the CORS origins
	AllowedOrigins []string `json:"allowed_origins"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Quote: QuoteConfig{
			DataFile:          "dados.json",
			CostPerKW:         5000,
			KWhPerKW:          150,
			MinimumCapacityKW: 1,
			ProjectionYears:   10,
			Currency:          "BRL",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
		Logging: logging.DefaultConfig(),
	}
}

// hclDocument is the flat HCL form of Config
type hclDocument struct {
	DataFile          string   `hcl:"data_file,optional"`
	CostPerKW         float64  `hcl:"cost_per_kw,optional"`
	KWhPerKW          float64  `hcl:"kwh_per_kw,optional"`
	MinimumCapacityKW float64  `hcl:"minimum_capacity_kw,optional"`
	ProjectionYears   int      `hcl:"projection_years,optional"`
	Currency          string   `hcl:"currency,optional"`
	ContactURL        string   `hcl:"contact_url,optional"`
	ServerAddr        string   `hcl:"server_addr,optional"`
	AllowedOrigins    []string `hcl:"allowed_origins,optional"`
	LogLevel          string   `hcl:"log_level,optional"`
	LogFormat         string   `hcl:"log_format,optional"`
	LogOutput         string   `hcl:"log_output,optional"`
}

// Load loads configuration from a JSON or HCL file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := loadHCL(path, config); err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(errors.TypeConfig, "parse "+path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadHCL(path string, config *Config) error {
	// Unset optional attributes keep these values.
	doc := hclDocument{
		DataFile:          config.Quote.DataFile,
		CostPerKW:         config.Quote.CostPerKW,
		KWhPerKW:          config.Quote.KWhPerKW,
		MinimumCapacityKW: config.Quote.MinimumCapacityKW,
		ProjectionYears:   config.Quote.ProjectionYears,
		Currency:          config.Quote.Currency,
		ContactURL:        config.Contact.URL,
		ServerAddr:        config.Server.Addr,
		AllowedOrigins:    config.Server.AllowedOrigins,
		LogLevel:          config.Logging.Level,
		LogFormat:         config.Logging.Format,
		LogOutput:         config.Logging.Output,
	}
	if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
		return errors.Wrap(errors.TypeConfig, "parse "+path, err)
	}

	config.Quote = QuoteConfig{
		DataFile:          doc.DataFile,
		CostPerKW:         doc.CostPerKW,
		KWhPerKW:          doc.KWhPerKW,
		MinimumCapacityKW: doc.MinimumCapacityKW,
		ProjectionYears:   doc.ProjectionYears,
		Currency:          doc.Currency,
	}
	config.Contact.URL = doc.ContactURL
	config.Server = ServerConfig{Addr: doc.ServerAddr, AllowedOrigins: doc.AllowedOrigins}
	config.Logging.Level = doc.LogLevel
	config.Logging.Format = doc.LogFormat
	config.Logging.Output = doc.LogOutput
	return nil
}

// ApplyEnv reads .env (if present) and applies environment overrides
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv(EnvDataFile); v != "" {
		c.Quote.DataFile = v
	}
	if v := os.Getenv(EnvContactURL); v != "" {
		c.Contact.URL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// Validate rejects values the estimators cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Quote.CostPerKW <= 0:
		return errors.Config("quote.cost_per_kw must be positive")
	case c.Quote.KWhPerKW <= 0:
		return errors.Config("quote.kwh_per_kw must be positive")
	case c.Quote.MinimumCapacityKW < 0:
		return errors.Config("quote.minimum_capacity_kw must not be negative")
	case c.Quote.ProjectionYears <= 0:
		return errors.Config("quote.projection_years must be positive")
	}
	return nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
