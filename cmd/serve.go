package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/forecast/server"
	"github.com/google/subcommands"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	port int
	dev  bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the forecast engine over HTTP" }
func (*serveCmd) Usage() string {
	return `fcs serve [-port <port>] [-dev]

  Starts a stateless HTTP JSON service. Every request carries its own profile:

    POST /api/forecast          yearly results (?from=, ?years=, ?format=)
    POST /api/forecast/summary  milestones of the forecast
    POST /api/forecast/{year}   a single year with its asset breakdown
    GET  /api/settings/defaults settings completing the requests
    GET  /health
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", cfg.Port, "Port to listen on.")
	f.BoolVar(&c.dev, "dev", false, "Development mode, responses are not compressed.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := newLogger()

	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		return subcommands.ExitFailure
	}

	srv := server.New(server.Config{
		Port:     c.port,
		Log:      log,
		Settings: s,
		DevMode:  c.dev,
	})

	errc := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errc:
		log.Error().Err(err).Msg("Server failed")
		return subcommands.ExitFailure
	case <-quit:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return subcommands.ExitFailure
	}
	log.Info().Msg("Server stopped")
	return subcommands.ExitSuccess
}
