package main

import (
	"context"

	"arena/config"
	"arena/di"
	"arena/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeConsumer()
	go consumer.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
