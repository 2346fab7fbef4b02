package main

import (
	"github.com/capitolwatch/backend/internal/server"
	"github.com/capitolwatch/backend/internal/util"
	"github.com/capitolwatch/backend/pkg/logger"
	"github.com/capitolwatch/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
