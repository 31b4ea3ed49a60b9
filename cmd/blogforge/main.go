package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"

	"github.com/blogforge/blogforge/pkg/agents"
	"github.com/blogforge/blogforge/pkg/config"
	"github.com/blogforge/blogforge/pkg/server"
	"github.com/blogforge/blogforge/pkg/webresearch"
)

// Information to find out exactly which commit the binary was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := exerrors.Must(config.Load(*configPath))
	level := exerrors.Must(zerolog.ParseLevel(cfg.LogLevel))
	log := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(level)
	log.Info().Str("tag", Tag).Str("commit", Commit).Str("built", BuildTime).Msg("starting blogforge")

	tool, err := webresearch.NewTool(cfg.Research)
	if err != nil {
		log.Fatal().Err(err).Msg("research tool configuration error")
	}
	crew, err := agents.NewCrew(cfg.Agents, tool)
	if err != nil {
		log.Fatal().Err(err).Msg("crew configuration error")
	}
	srv, err := server.New(cfg.Server, crew, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server configuration error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
