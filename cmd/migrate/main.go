package main

import (
	"os"
	"strings"

	"stayops/config"
	"stayops/helper"
	"stayops/shared/logger"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Str("actions", strings.Join(helper.Actions(), ", ")).Msg("Migration action is required")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	action := os.Args[1]

	if action == helper.ActionVersion {
		version, dirty, err := helper.Version(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read schema version")
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return
	}

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
