package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/forecast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "profile.json", cfg.ProfileFile)
	assert.Equal(t, forecast.DefaultCurrency, cfg.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, forecast.DefaultSettings(), cfg.Settings)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvProfileFile, "mine.json")
	t.Setenv(EnvCurrency, "EUR")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvLogPretty, "false")
	t.Setenv(EnvLoanInterestRate, "6.25")
	t.Setenv(EnvLoanTermYears, "25")
	t.Setenv(EnvResidenceLoanTermYears, "not a number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mine.json", cfg.ProfileFile)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 9090, cfg.Port)
	assert.False(t, cfg.LogPretty)
	assert.True(t, cfg.Settings.DefaultLoanInterestRate.Equal(forecast.D(6.25)))
	assert.Equal(t, 25, cfg.Settings.DefaultLoanTermYears)
	assert.Equal(t, 20, cfg.Settings.DefaultPrincipalResidenceLoanTermYears)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv never overrides variables that are already set.
	os.Unsetenv(EnvModel)
	t.Cleanup(func() { os.Unsetenv(EnvModel) })
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvModel+"=gemini-test\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini-test", cfg.Model)
}

func TestLoad_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	file := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"defaultCapitalGrowthRate": 4, "defaultLoanTermYears": 35}`), 0644))
	t.Setenv(EnvSettingsFile, file)
	t.Setenv(EnvLoanTermYears, "40")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Settings.DefaultCapitalGrowthRate.Equal(forecast.D(4)))
	assert.Equal(t, 40, cfg.Settings.DefaultLoanTermYears, "environment wins over the file")
	assert.Equal(t, 3, cfg.Settings.DefaultLoanInterestOnlyPeriod)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing settings file", env: map[string]string{EnvSettingsFile: "does-not-exist.json"}},
		{name: "port", env: map[string]string{EnvPort: "70000"}},
		{name: "log level", env: map[string]string{EnvLogLevel: "chatty"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvLoanInterestRate, "6.5")

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.True(t, s.DefaultLoanInterestRate.Equal(forecast.D(6.5)), "defaultLoanInterestRate = %v", s.DefaultLoanInterestRate)
	assert.Equal(t, 30, s.DefaultLoanTermYears)

	_, err = LoadSettings("missing.json")
	assert.Error(t, err)
}
