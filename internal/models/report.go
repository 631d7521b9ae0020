package models

import "time"

// Report categories. The numeric values are part of the API contract.
const (
	CategoryIncident   = 1
	CategorySuggestion = 2
	CategoryComplaint  = 3
)

// CategoryNames maps category ids to their display names.
var CategoryNames = map[int]string{
	CategoryIncident:   "Incident",
	CategorySuggestion: "Suggestion",
	CategoryComplaint:  "Complaint",
}

// ValidCategory reports whether id is one of the defined report categories.
func ValidCategory(id int) bool {
	return id >= CategoryIncident && id <= CategoryComplaint
}

// Report is a user-submitted status record for a transport route.
// AuthorID must reference an existing Account; RouteID is assumed to
// reference a route managed elsewhere and is not resolved here.
type Report struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	RouteID   int       `json:"routeId"`
	Category  int       `json:"category"`
	AuthorID  int       `json:"authorId"`
	Title     string    `gorm:"size:100" json:"title"`
	Body      string    `gorm:"size:1000" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats aggregates report counts per category plus recent activity.
type Stats struct {
	Total       int `json:"total"`
	Incidents   int `json:"incidents"`
	Suggestions int `json:"suggestions"`
	Complaints  int `json:"complaints"`
	LastMonth   int `json:"lastMonth"`
}
