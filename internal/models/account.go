package models

// Account represents a registered user of the reporting system.
// The Password field holds a bcrypt hash in storage and is cleared
// before an account ever leaves the service layer.
type Account struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex" json:"email"`
	Password string `gorm:"size:100" json:"password,omitempty"`
}
