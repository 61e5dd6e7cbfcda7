package main

import (
	"smartcheckout/internal/adapter/http/routes"
	"smartcheckout/pkg/logging"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := logging.Init(); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logging.Sync()

	routes.Run()
}
