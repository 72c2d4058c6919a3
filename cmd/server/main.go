package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/kamarlaylatt/my-expense/internal/config"
	"github.com/kamarlaylatt/my-expense/internal/repository"
	"github.com/kamarlaylatt/my-expense/internal/server"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := repository.NewDB(cfg.DatabaseDSN, cfg.DBDebug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	router := server.New(db, server.Options{
		JWTSecret: cfg.JWTSecret,
		JWTExpiry: cfg.JWTExpiry,
	})

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
