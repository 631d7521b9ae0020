package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"wheely/backend/internal/account"
	"wheely/backend/internal/api/handler"
	"wheely/backend/internal/config"
	"wheely/backend/internal/feed"
	"wheely/backend/internal/models"
	"wheely/backend/internal/report"
	"wheely/backend/internal/storage"
	"wheely/backend/internal/telegram"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL. TranslateError turns unique-index violations into
	// gorm.ErrDuplicatedKey so the storage layer can report conflicts.
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&models.Account{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting Wheely Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	// 1. Dependencies and the storage gateway
	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// 2. Rules engines
	accounts := account.NewService(s)
	reports := report.NewService(s)

	// 3. Live feed hub
	hub := feed.NewHub(s)
	go hub.Run()

	// 4. Optional Telegram admin notifications
	if cfg.TelegramToken != "" && cfg.TelegramChatID != "" {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		reports.SetNotifier(notifier)
	}

	// 5. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(accounts, reports, hub, s, cfg.JWTSecret)

	r.GET("/accounts", h.GetAccounts)
	r.GET("/accounts/:id", h.GetAccountByID)
	r.POST("/accounts", h.CreateAccount)
	r.PUT("/accounts/:id", h.UpdateAccount)
	r.DELETE("/accounts/:id", h.DeleteAccount)
	r.POST("/accounts/login", h.Login)
	r.PUT("/accounts/:id/password", h.ChangePassword)

	r.GET("/reports", h.GetReports)
	r.GET("/reports/:id", h.GetReportByID)
	r.POST("/reports", h.CreateReport)
	r.PUT("/reports/:id", h.UpdateReport)
	r.DELETE("/reports/:id", h.DeleteReport)
	r.GET("/reports/author/:authorId", h.GetReportsByAuthor)
	r.GET("/reports/stats", h.GetReportStats)
	r.GET("/reports/categories", h.GetReportCategories)

	r.GET("/ws/reports", h.ServeReportFeed)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
