package handler_test

import (
	"github.com/stretchr/testify/mock"

	"wheely/backend/internal/models"
)

// MockStorage is a hand-rolled testify mock of storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetAccounts() ([]models.Account, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockStorage) GetAccountByID(id int) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockStorage) GetAccountByEmail(email string) (*models.Account, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockStorage) SaveAccount(account *models.Account) (int, error) {
	args := m.Called(account)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) UpdateAccount(account *models.Account) (bool, error) {
	args := m.Called(account)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) DeleteAccount(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) GetReports() ([]models.Report, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) GetReportByID(id int) (*models.Report, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Report), args.Error(1)
}

func (m *MockStorage) GetReportsByAuthor(authorID int) ([]models.Report, error) {
	args := m.Called(authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Report), args.Error(1)
}

func (m *MockStorage) SaveReport(report *models.Report) (int, error) {
	args := m.Called(report)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) UpdateReport(report *models.Report) (bool, error) {
	args := m.Called(report)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) DeleteReport(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CountReports() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) CountReportsByAuthor(authorID int) (int, error) {
	args := m.Called(authorID)
	return args.Int(0), args.Error(1)
}

func (m *MockStorage) PublishReport(report models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockStorage) RegisterFailedLogin(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockStorage) ResetFailedLogins(email string) error {
	args := m.Called(email)
	return args.Error(0)
}

func (m *MockStorage) IsLoginThrottled(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}
