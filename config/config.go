// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/forecast"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables read by Load.
const (
	EnvProfileFile  = "FCS_PROFILE_FILE"
	EnvSettingsFile = "FCS_SETTINGS_FILE"
	EnvCurrency     = "FCS_CURRENCY"
	EnvLogLevel     = "FCS_LOG_LEVEL"
	EnvLogPretty    = "FCS_LOG_PRETTY"
	EnvPort         = "FCS_PORT"
	EnvModel        = "FCS_MODEL"

	EnvCapitalGrowthRate      = "FCS_DEFAULT_CAPITAL_GROWTH_RATE"
	EnvIncomeGrowthRate       = "FCS_DEFAULT_INCOME_GROWTH_RATE"
	EnvExpenseGrowthRate      = "FCS_DEFAULT_EXPENSE_GROWTH_RATE"
	EnvLoanToValueRatio       = "FCS_DEFAULT_LOAN_TO_VALUE_RATIO"
	EnvLoanInterestRate       = "FCS_DEFAULT_LOAN_INTEREST_RATE"
	EnvLoanInterestOnlyPeriod = "FCS_DEFAULT_LOAN_INTEREST_ONLY_PERIOD"
	EnvLoanTermYears          = "FCS_DEFAULT_LOAN_TERM_YEARS"
	EnvResidenceLoanTermYears = "FCS_DEFAULT_RESIDENCE_LOAN_TERM_YEARS"
)

// Config holds application configuration
type Config struct {
	ProfileFile  string // profile read by the commands
	SettingsFile string // optional settings, merged over the defaults
	Currency     string // display currency when the profile has none
	LogLevel     string
	LogPretty    bool
	Port         int
	Model        string // Gemini model of the assistant

	// Settings are the defaults, the settings file and the FCS_DEFAULT_*
	// variables, in that order of precedence.
	Settings forecast.Settings
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ProfileFile:  getEnv(EnvProfileFile, "profile.json"),
		SettingsFile: getEnv(EnvSettingsFile, ""),
		Currency:     getEnv(EnvCurrency, forecast.DefaultCurrency),
		LogLevel:     getEnv(EnvLogLevel, "info"),
		LogPretty:    getEnvAsBool(EnvLogPretty, true),
		Port:         getEnvAsInt(EnvPort, 8080),
		Model:        getEnv(EnvModel, "gemini-2.5-pro"),
		Settings:     forecast.DefaultSettings(),
	}

	s, err := LoadSettings(cfg.SettingsFile)
	if err != nil {
		return nil, err
	}
	cfg.Settings = s

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSettings reads the settings file, when file is not empty, over the
// default settings and applies the FCS_DEFAULT_* variables.
func LoadSettings(file string) (forecast.Settings, error) {
	s := forecast.DefaultSettings()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return s, fmt.Errorf("failed to open settings file: %w", err)
		}
		defer f.Close()
		if s, err = forecast.DecodeSettings(f); err != nil {
			return s, fmt.Errorf("failed to decode settings file %q: %w", file, err)
		}
	}
	applySettingsEnv(&s)
	return s, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

func applySettingsEnv(s *forecast.Settings) {
	s.DefaultCapitalGrowthRate = getEnvAsDecimal(EnvCapitalGrowthRate, s.DefaultCapitalGrowthRate)
	s.DefaultIncomeGrowthRate = getEnvAsDecimal(EnvIncomeGrowthRate, s.DefaultIncomeGrowthRate)
	s.DefaultExpenseGrowthRate = getEnvAsDecimal(EnvExpenseGrowthRate, s.DefaultExpenseGrowthRate)
	s.DefaultLoanToValueRatio = getEnvAsDecimal(EnvLoanToValueRatio, s.DefaultLoanToValueRatio)
	s.DefaultLoanInterestRate = getEnvAsDecimal(EnvLoanInterestRate, s.DefaultLoanInterestRate)
	s.DefaultLoanInterestOnlyPeriod = getEnvAsInt(EnvLoanInterestOnlyPeriod, s.DefaultLoanInterestOnlyPeriod)
	s.DefaultLoanTermYears = getEnvAsInt(EnvLoanTermYears, s.DefaultLoanTermYears)
	s.DefaultPrincipalResidenceLoanTermYears = getEnvAsInt(EnvResidenceLoanTermYears, s.DefaultPrincipalResidenceLoanTermYears)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}
