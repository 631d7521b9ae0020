// Package storage is the persistence gateway. It owns all PostgreSQL and
// Redis access; the rules engines only ever see the Storage interface.
//
// Lookup methods return (nil, nil) when no row matches, so callers can
// distinguish "absent" from a real storage fault.
package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"wheely/backend/internal/models"
)

type Storage interface {
	// accounts
	GetAccounts() ([]models.Account, error)
	GetAccountByID(id int) (*models.Account, error)
	GetAccountByEmail(email string) (*models.Account, error)
	SaveAccount(account *models.Account) (int, error)
	UpdateAccount(account *models.Account) (bool, error)
	DeleteAccount(id int) (bool, error)

	// reports
	GetReports() ([]models.Report, error)
	GetReportByID(id int) (*models.Report, error)
	GetReportsByAuthor(authorID int) ([]models.Report, error)
	SaveReport(report *models.Report) (int, error)
	UpdateReport(report *models.Report) (bool, error)
	DeleteReport(id int) (bool, error)
	CountReports() (int, error)
	CountReportsByAuthor(authorID int) (int, error)

	// report events
	PublishReport(report models.Report) error

	// login throttling
	RegisterFailedLogin(email string) error
	ResetFailedLogins(email string) error
	IsLoginThrottled(email string) (bool, error)
}

// Service implements Storage over a gorm DB handle and a Redis client.
// Both are injected at construction; the service holds no other state.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
