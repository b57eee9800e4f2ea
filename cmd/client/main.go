package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-label-keeper/internal/adapter"
	"github.com/MKhiriev/go-label-keeper/internal/client"
	"github.com/MKhiriev/go-label-keeper/internal/config"
	"github.com/MKhiriev/go-label-keeper/internal/logger"
)

func main() {
	log := logger.NewLogger("labels-client", os.Getenv("CLIENT_LOG_LEVEL"))

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	labels, err := adapter.NewHTTPLabelsAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating labels adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(labels, os.Stdout, log).Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
