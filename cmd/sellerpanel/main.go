package main

import (
	"log"

	"github.com/payingzee/sellerpanel/internal/app"
	"github.com/payingzee/sellerpanel/internal/config"
	"github.com/payingzee/sellerpanel/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
