package main

import (
	"stayops/config"
	"stayops/di"
	"stayops/shared/logger"
)

// @title StayOps API
// @version 1.0
// @description Availability, pricing and booking operations for short-term rental properties.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
