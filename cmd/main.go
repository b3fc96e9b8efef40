package main

import (
	"github.com/joaquincgp/FitFlow/config"
	"github.com/joaquincgp/FitFlow/logger"
	"github.com/joaquincgp/FitFlow/routes"
	"github.com/joaquincgp/FitFlow/services"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	hub := services.NewRealtimeHub()

	r := routes.SetupRouter(hub)
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server stopped: " + err.Error())
	}
}
