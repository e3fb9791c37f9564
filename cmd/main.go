package main

import (
	"os"

	"fxalerts/internal/app"

	"github.com/sirupsen/logrus"
)

// @title fxalerts API
// @version 1.0
// @description Live fiat and crypto rates, conversions and threshold alerts.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
