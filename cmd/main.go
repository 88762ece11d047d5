package main

import (
	"os"

	"github.com/Darkphantom323/LifePulse/config"
	"github.com/Darkphantom323/LifePulse/routes"
	"github.com/Darkphantom323/LifePulse/services"
	"github.com/Darkphantom323/LifePulse/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()
	utils.InitRekognition()

	hub := services.NewRealtimeHub()
	services.InitRealtime(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(hub)
	r.Run(":" + port)
}
