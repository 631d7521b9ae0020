package storage

import (
	"errors"

	"gorm.io/gorm"

	"wheely/backend/internal/models"
)

// GetReports returns all reports, newest first.
func (s *Service) GetReports() ([]models.Report, error) {
	var reports []models.Report
	if err := s.DB.Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReportByID returns the report with the given id, or nil if absent.
func (s *Service) GetReportByID(id int) (*models.Report, error) {
	var report models.Report
	err := s.DB.First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReportsByAuthor returns all reports by one author, newest first.
func (s *Service) GetReportsByAuthor(authorID int) ([]models.Report, error) {
	var reports []models.Report
	err := s.DB.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// SaveReport inserts a new report and returns the generated id.
func (s *Service) SaveReport(report *models.Report) (int, error) {
	if err := s.DB.Create(report).Error; err != nil {
		return 0, err
	}
	return report.ID, nil
}

// UpdateReport writes all mutable report fields plus the creation timestamp
// the service carried forward. Returns false when no row with that id exists.
func (s *Service) UpdateReport(report *models.Report) (bool, error) {
	res := s.DB.Model(&models.Report{}).
		Where("id = ?", report.ID).
		Select("route_id", "category", "author_id", "title", "body", "created_at").
		Updates(report)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// DeleteReport removes the report with the given id.
// Returns false when no row with that id exists.
func (s *Service) DeleteReport(id int) (bool, error) {
	res := s.DB.Delete(&models.Report{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CountReports returns the total number of stored reports.
func (s *Service) CountReports() (int, error) {
	var count int64
	if err := s.DB.Model(&models.Report{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// CountReportsByAuthor returns how many reports reference authorID.
func (s *Service) CountReportsByAuthor(authorID int) (int, error) {
	var count int64
	err := s.DB.Model(&models.Report{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
