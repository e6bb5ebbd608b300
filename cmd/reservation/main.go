package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/bike-rental/reservation/app"
	"github.com/Astemirdum/bike-rental/reservation/config"
)

// @title        Bike rental API
// @version      1.0
// @description  Bike catalog and rental ledger.
// @BasePath     /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
