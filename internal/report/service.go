// Package report implements the business rules for status reports:
// field validation, authorship enforcement and aggregate statistics.
package report

import (
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"wheely/backend/internal/apperr"
	"wheely/backend/internal/models"
	"wheely/backend/internal/storage"
)

const maxTitleLen = 100
const maxBodyLen = 1000

// Notifier receives successfully created reports, e.g. to alert admins.
type Notifier interface {
	ReportCreated(report models.Report)
}

// Service handles the business logic for reports.
type Service struct {
	Storage  storage.Storage
	notifier Notifier
}

// NewService creates a new report service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// SetNotifier attaches an optional notifier for created reports.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// GetAll returns every report, newest first.
func (s *Service) GetAll() ([]models.Report, error) {
	return s.Storage.GetReports()
}

// GetByID returns one report by id.
func (s *Service) GetByID(id int) (*models.Report, error) {
	rep, err := s.Storage.GetReportByID(id)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, fmt.Errorf("%w: report %d", apperr.ErrNotFound, id)
	}
	return rep, nil
}

// GetByAuthor returns all reports by one author, newest first.
// The author must resolve to an existing account.
func (s *Service) GetByAuthor(authorID int) ([]models.Report, error) {
	author, err := s.Storage.GetAccountByID(authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, fmt.Errorf("%w: account %d", apperr.ErrNotFound, authorID)
	}
	return s.Storage.GetReportsByAuthor(authorID)
}

// Create validates and persists a new report with a server-assigned creation
// timestamp, returning the generated id. The created report is published to
// the live feed and handed to the notifier, both best-effort.
func (s *Service) Create(rep *models.Report) (int, error) {
	if err := s.validateForWrite(rep); err != nil {
		return 0, err
	}

	rep.CreatedAt = time.Now()
	id, err := s.Storage.SaveReport(rep)
	if err != nil {
		return 0, err
	}

	if err := s.Storage.PublishReport(*rep); err != nil {
		log.Printf("failed to publish report %d to the feed: %v", id, err)
	}
	if s.notifier != nil {
		go s.notifier.ReportCreated(*rep)
	}
	return id, nil
}

// Update revalidates and persists an existing report. Authorship is
// immutable: the payload author must match the stored one. The original
// creation timestamp is carried forward.
func (s *Service) Update(id int, rep *models.Report) error {
	existing, err := s.Storage.GetReportByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: report %d", apperr.ErrNotFound, id)
	}

	if err := s.validateForWrite(rep); err != nil {
		return err
	}

	if existing.AuthorID != rep.AuthorID {
		return fmt.Errorf("%w: only the author may modify this report", apperr.ErrUnauthorized)
	}

	rep.ID = id
	rep.CreatedAt = existing.CreatedAt

	updated, err := s.Storage.UpdateReport(rep)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: report %d", apperr.ErrNotFound, id)
	}
	return nil
}

// Delete removes a report. The requester must be its author.
func (s *Service) Delete(id, requesterID int) error {
	rep, err := s.Storage.GetReportByID(id)
	if err != nil {
		return err
	}
	if rep == nil {
		return fmt.Errorf("%w: report %d", apperr.ErrNotFound, id)
	}

	if rep.AuthorID != requesterID {
		return fmt.Errorf("%w: only the author may delete this report", apperr.ErrUnauthorized)
	}

	deleted, err := s.Storage.DeleteReport(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: report %d", apperr.ErrNotFound, id)
	}
	return nil
}

// Stats aggregates report counts: total, per category, and reports created
// within the trailing 30 days. The recent count scans the full set at call
// time, so it is always consistent with the data.
func (s *Service) Stats() (*models.Stats, error) {
	total, err := s.Storage.CountReports()
	if err != nil {
		return nil, err
	}

	reports, err := s.Storage.GetReports()
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{Total: total}
	cutoff := time.Now().AddDate(0, 0, -30)
	for _, rep := range reports {
		switch rep.Category {
		case models.CategoryIncident:
			stats.Incidents++
		case models.CategorySuggestion:
			stats.Suggestions++
		case models.CategoryComplaint:
			stats.Complaints++
		}
		if rep.CreatedAt.After(cutoff) {
			stats.LastMonth++
		}
	}
	return stats, nil
}

// validateForWrite runs the shared create/update validations.
func (s *Service) validateForWrite(rep *models.Report) error {
	if rep == nil {
		return fmt.Errorf("%w: report data is required", apperr.ErrInvalidInput)
	}
	if strings.TrimSpace(rep.Title) == "" {
		return fmt.Errorf("%w: title is required", apperr.ErrInvalidInput)
	}
	if strings.TrimSpace(rep.Body) == "" {
		return fmt.Errorf("%w: body is required", apperr.ErrInvalidInput)
	}
	// Bounds are in characters, not bytes, so multi-byte text is not
	// penalized.
	if utf8.RuneCountInString(strings.TrimSpace(rep.Title)) > maxTitleLen {
		return fmt.Errorf("%w: title must not exceed %d characters", apperr.ErrInvalidInput, maxTitleLen)
	}
	if utf8.RuneCountInString(strings.TrimSpace(rep.Body)) > maxBodyLen {
		return fmt.Errorf("%w: body must not exceed %d characters", apperr.ErrInvalidInput, maxBodyLen)
	}
	if rep.AuthorID <= 0 {
		return fmt.Errorf("%w: invalid author id", apperr.ErrInvalidInput)
	}

	author, err := s.Storage.GetAccountByID(rep.AuthorID)
	if err != nil {
		return err
	}
	if author == nil {
		return fmt.Errorf("%w: author account %d does not exist", apperr.ErrInvalidInput, rep.AuthorID)
	}

	if !models.ValidCategory(rep.Category) {
		return fmt.Errorf("%w: invalid report category", apperr.ErrInvalidInput)
	}
	if rep.RouteID <= 0 {
		return fmt.Errorf("%w: invalid route id", apperr.ErrInvalidInput)
	}
	return nil
}
