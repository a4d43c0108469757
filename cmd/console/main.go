package main

import (
	"context"
	"staytrack/config"
	"staytrack/di"
	"staytrack/shared/logger"
	"staytrack/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	console := di.InitializeConsole()
	defer console.Sessions.Close()

	console.Sessions.Restore(context.Background())
	console.HTTP.Serve()
}
