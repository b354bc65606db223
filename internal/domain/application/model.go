package application

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Application is a request for a welfare scheme. SchemeName is a denormalized
// copy taken at submission time and is never re-synced if the scheme is later
// edited: historical display reflects what the applicant applied to.
type Application struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	UserID     string    `gorm:"type:text;not null;index"`
	SchemeID   string    `gorm:"type:text;not null"`
	SchemeName string    `gorm:"type:text;not null"`
	Notes      string    `gorm:"type:text"`
	Status     string    `gorm:"type:varchar(16);not null"`
	AppliedAt  time.Time `gorm:"not null"`
}
