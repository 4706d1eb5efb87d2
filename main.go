package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("Fatal: %v\n", err)
		os.Exit(1)
	}

	InitLogger(config.LogLevel, os.Stdout)

	if config.DefaultPort {
		log.Info().Msg("No port specified, using the default one.")
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := NewServer(config)
	if err := srv.Start(shutdownCtx); err != nil {
		log.Error().Err(err).Str("port", config.Port).
			Msgf("Failed to initialize listener, perhaps the port is wrong? '%s'", config.Port)
		return
	}

	if err := srv.Serve(); err != nil {
		log.Fatal().Err(err).Msg("Failed to handle connection, aborting without writing data")
	}

	if err := srv.Flush(outFile); err != nil {
		if errors.Is(err, ErrCreateOutput) {
			log.Error().Err(err).Msg("Failed to write data!")
			return
		}
		log.Fatal().Err(err).Msg("Failed to write data!")
	}

	log.Info().Msg("Exiting...")
}
