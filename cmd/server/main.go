package main

import (
	"encoding/base64"
	"log"

	"github.com/gin-gonic/gin"

	"timescan.app/timescan/config"
	"timescan.app/timescan/core"
	"timescan.app/timescan/shift"
	"timescan.app/timescan/store"
	"timescan.app/timescan/web/handlers"
	"timescan.app/timescan/web/middlewares"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	settings, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal(err)
	}

	shifts, err := shift.NewStore(settings)
	if err != nil {
		log.Fatal(err)
	}

	session := core.NewSession()

	r := gin.Default()
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	if cfg.SigningSecret != "" {
		secret, err := base64.StdEncoding.DecodeString(cfg.SigningSecret)
		if err != nil {
			log.Fatal("failed to decode signing secret:", err)
		}
		api.Use(middlewares.Authentication(secret))
	} else {
		log.Printf("SIGNING_SECRET not set, api is unauthenticated")
	}
	handlers.Register(api, session, shifts)

	log.Printf("listening on %s (settings db: %s)", cfg.Listen, cfg.DatabasePath)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatal(err)
	}
}
