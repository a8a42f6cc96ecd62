// Package cmd implements the CLI application to forecast a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/forecast"
	"github.com/etnz/forecast/config"
	"github.com/etnz/forecast/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&forecastCmd{}, "forecast")
	c.Register(&yearCmd{}, "forecast")
	c.Register(&summaryCmd{}, "forecast")
	c.Register(&assetsCmd{}, "profile")
	c.Register(&fmtCmd{}, "profile")
	c.Register(&serveCmd{}, "service")
	c.Register(&AssistCmd{}, "service")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cfg = loadConfig()

var profileFile = flag.String("profile", cfg.ProfileFile, "Path to the JSON profile to forecast")
var settingsFile = flag.String("settings", cfg.SettingsFile, "Path to a JSON settings file completing the default settings")
var defaultCurrency = flag.String("currency", cfg.Currency, "Display currency of profiles without one")
var Verbose = flag.Bool("v", false, "Verbose logging")

// stdout receives the output of the commands.
var stdout io.Writer = os.Stdout

func loadConfig() *config.Config {
	c, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning, invalid configuration, using defaults instead: %v\n", err)
		c = &config.Config{
			ProfileFile: "profile.json",
			Currency:    forecast.DefaultCurrency,
			LogLevel:    "info",
			LogPretty:   true,
			Port:        8080,
			Model:       "gemini-2.5-pro",
			Settings:    forecast.DefaultSettings(),
		}
	}
	return c
}

// newLogger returns the logger of the commands, it writes on stderr.
func newLogger() zerolog.Logger {
	level := cfg.LogLevel
	if *Verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Level: level, Pretty: cfg.LogPretty})
}

// loadSettings returns the settings of the -settings file.
func loadSettings() (forecast.Settings, error) {
	if *settingsFile == cfg.SettingsFile {
		return cfg.Settings, nil
	}
	return config.LoadSettings(*settingsFile)
}

// loadProfile decodes the -profile file. Incomplete assets are logged but do
// not prevent the forecast.
func loadProfile(log zerolog.Logger, s forecast.Settings) (forecast.Profile, error) {
	f, err := os.Open(*profileFile)
	if err != nil {
		return forecast.Profile{}, fmt.Errorf("could not open profile file %q: %w", *profileFile, err)
	}
	defer f.Close()

	p, err := forecast.DecodeProfile(f)
	if err != nil {
		return forecast.Profile{}, fmt.Errorf("could not decode profile file %q: %w", *profileFile, err)
	}
	if p.Currency == "" {
		p.Currency = *defaultCurrency
	}
	if err := forecast.Validate(p, s); err != nil {
		log.Warn().Err(err).Str("profile", *profileFile).Msg("Incomplete profile")
	}
	log.Debug().Int("assets", len(p.Assets)).Int("start", p.Start()).Int("years", p.Years()).Msg("Profile loaded")
	return p, nil
}

// load returns the settings and the profile of the commands.
func load() (forecast.Profile, forecast.Settings, subcommands.ExitStatus) {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return forecast.Profile{}, s, subcommands.ExitFailure
	}
	p, err := loadProfile(newLogger(), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return p, s, subcommands.ExitFailure
	}
	return p, s, subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it verbatim when the
// output is not a terminal.
func printMarkdown(md string) {
	if !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
