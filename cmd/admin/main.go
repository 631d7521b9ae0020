package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wheely/backend/internal/config"
	"wheely/backend/internal/report"
	"wheely/backend/internal/storage"
)

// Small operator CLI: report statistics and unlocking throttled logins.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	storageSvc := storage.NewStorageService(db, rdb)

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: stats | unlock <email>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "stats":
		stats, err := report.NewService(storageSvc).Stats()
		if err != nil {
			log.Fatalf("Error computing stats: %v", err)
		}
		fmt.Printf("Total reports:   %d\n", stats.Total)
		fmt.Printf("  Incidents:     %d\n", stats.Incidents)
		fmt.Printf("  Suggestions:   %d\n", stats.Suggestions)
		fmt.Printf("  Complaints:    %d\n", stats.Complaints)
		fmt.Printf("Last 30 days:    %d\n", stats.LastMonth)
	case "unlock":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unlock <email>")
			os.Exit(1)
		}
		email := os.Args[2]
		if err := storageSvc.ResetFailedLogins(email); err != nil {
			log.Fatalf("Error unlocking login for %s: %v", email, err)
		}
		fmt.Printf("Login throttle cleared for %s.\n", email)
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}
