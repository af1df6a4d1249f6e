package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/greenwall/internal/adapter"
	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("greenwall-client", os.Stderr, os.Getenv("GREENWALL_VERBOSE") != "")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating API client")
	}

	tokens, err := newTokenFile(os.Getenv("GREENWALL_TOKEN_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("error locating session file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli{client: client, tokens: tokens, out: os.Stdout, logger: log}
	if err = c.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
