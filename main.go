package main

import (
	"os"

	"salon-api/core/logger"
	"salon-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
