package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wheely/backend/internal/apperr"
	"wheely/backend/internal/models"
)

// GetAccounts returns every account, in no particular order.
func (s *Service) GetAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := s.DB.Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccountByID returns the account with the given id, or nil if absent.
func (s *Service) GetAccountByID(id int) (*models.Account, error) {
	var account models.Account
	err := s.DB.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByEmail returns the account registered under email, or nil if absent.
func (s *Service) GetAccountByEmail(email string) (*models.Account, error) {
	var account models.Account
	err := s.DB.Where("email = ?", email).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// SaveAccount inserts a new account and returns the generated id.
// A race on the unique email index surfaces as apperr.ErrConflict.
func (s *Service) SaveAccount(account *models.Account) (int, error) {
	if err := s.DB.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return 0, err
	}
	return account.ID, nil
}

// UpdateAccount writes name, email and password for an existing account.
// Returns false when no row with that id exists.
func (s *Service) UpdateAccount(account *models.Account) (bool, error) {
	res := s.DB.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Select("name", "email", "password").
		Updates(account)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteAccount removes the account with the given id.
// Returns false when no row with that id exists.
func (s *Service) DeleteAccount(id int) (bool, error) {
	res := s.DB.Delete(&models.Account{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
