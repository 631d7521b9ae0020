// Package account implements the business rules for accounts: field
// validation, email uniqueness, credential handling and authentication.
package account

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"wheely/backend/internal/apperr"
	"wheely/backend/internal/models"
	"wheely/backend/internal/password"
	"wheely/backend/internal/storage"
)

const maxNameLen = 100
const maxEmailLen = 100

// The exact pattern is part of the API contract, keep it stable.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Service handles the business logic for accounts.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new account service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// GetAll returns every account with the credential field cleared.
func (s *Service) GetAll() ([]models.Account, error) {
	accounts, err := s.Storage.GetAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		accounts[i].Password = ""
	}
	return accounts, nil
}

// GetByID returns one account with the credential field cleared.
func (s *Service) GetByID(id int) (*models.Account, error) {
	acc, err := s.Storage.GetAccountByID(id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}
	acc.Password = ""
	return acc, nil
}

// Create validates and registers a new account. The plaintext credential is
// hashed before it reaches storage; the generated id is returned.
func (s *Service) Create(acc *models.Account) (int, error) {
	if err := validate(acc); err != nil {
		return 0, err
	}
	normalize(acc)

	existing, err := s.Storage.GetAccountByEmail(acc.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
	}

	if !password.MeetsPolicy(acc.Password) {
		return 0, fmt.Errorf("%w: password must be at least %d characters", apperr.ErrInvalidInput, password.MinLength)
	}

	digest, err := password.Hash(acc.Password)
	if err != nil {
		return 0, err
	}
	acc.Password = digest

	return s.Storage.SaveAccount(acc)
}

// Update revalidates and persists an existing account. A blank credential in
// the payload keeps the stored hash; a non-blank one is policy-checked and
// rehashed. The new email must not belong to a different account.
func (s *Service) Update(id int, acc *models.Account) error {
	existing, err := s.Storage.GetAccountByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}

	if err := validate(acc); err != nil {
		return err
	}
	normalize(acc)

	owner, err := s.Storage.GetAccountByEmail(acc.Email)
	if err != nil {
		return err
	}
	if owner != nil && owner.ID != id {
		return fmt.Errorf("%w: email already registered to another account", apperr.ErrConflict)
	}

	if strings.TrimSpace(acc.Password) != "" {
		if !password.MeetsPolicy(acc.Password) {
			return fmt.Errorf("%w: password must be at least %d characters", apperr.ErrInvalidInput, password.MinLength)
		}
		digest, err := password.Hash(acc.Password)
		if err != nil {
			return err
		}
		acc.Password = digest
	} else {
		acc.Password = existing.Password
	}

	acc.ID = id
	updated, err := s.Storage.UpdateAccount(acc)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}
	return nil
}

// Delete removes an account. While reports by this author exist the delete
// is refused, otherwise those reports would reference a ghost author.
func (s *Service) Delete(id int) error {
	existing, err := s.Storage.GetAccountByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}

	authored, err := s.Storage.CountReportsByAuthor(id)
	if err != nil {
		return err
	}
	if authored > 0 {
		return fmt.Errorf("%w: account has %d reports, delete them first", apperr.ErrConflict, authored)
	}

	deleted, err := s.Storage.DeleteAccount(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}
	return nil
}

// Authenticate checks an email/password pair. A failed match is not an
// error: the result is simply nil, so callers cannot tell a wrong password
// from an unknown email. On success the credential field is cleared.
func (s *Service) Authenticate(email, plain string) (*models.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || plain == "" {
		return nil, nil
	}

	acc, err := s.Storage.GetAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, nil
	}

	if !password.Verify(plain, acc.Password) {
		return nil, nil
	}

	acc.Password = ""
	return acc, nil
}

// ChangePassword rotates an account credential after verifying the current one.
func (s *Service) ChangePassword(id int, current, next string) error {
	acc, err := s.Storage.GetAccountByID(id)
	if err != nil {
		return err
	}
	if acc == nil {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}

	if !password.Verify(current, acc.Password) {
		return fmt.Errorf("%w: current password is incorrect", apperr.ErrUnauthorized)
	}

	if !password.MeetsPolicy(next) {
		return fmt.Errorf("%w: new password must be at least %d characters", apperr.ErrInvalidInput, password.MinLength)
	}

	digest, err := password.Hash(next)
	if err != nil {
		return err
	}
	acc.Password = digest

	updated, err := s.Storage.UpdateAccount(acc)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: account %d", apperr.ErrNotFound, id)
	}
	return nil
}

// normalize strips the padding validate tolerated, so the stored email is
// the exact string Authenticate will later look up.
func normalize(acc *models.Account) {
	acc.Name = strings.TrimSpace(acc.Name)
	acc.Email = strings.TrimSpace(acc.Email)
}

func validate(acc *models.Account) error {
	if acc == nil {
		return fmt.Errorf("%w: account data is required", apperr.ErrInvalidInput)
	}
	name := strings.TrimSpace(acc.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("%w: name must not exceed %d characters", apperr.ErrInvalidInput, maxNameLen)
	}
	email := strings.TrimSpace(acc.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperr.ErrInvalidInput)
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return fmt.Errorf("%w: email must not exceed %d characters", apperr.ErrInvalidInput, maxEmailLen)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", apperr.ErrInvalidInput)
	}
	return nil
}
