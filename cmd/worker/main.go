package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"stayops/config"
	"stayops/di"
	"stayops/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required to run the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	if err := consumer.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Booking event consumer exited with error")
	}
}
