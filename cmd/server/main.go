package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/graphbio/helix/internal/config"
	"github.com/graphbio/helix/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
