package contact

import "time"

// EmergencyContact is owner-scoped: only the owning account (or an admin)
// may list or modify it.
type EmergencyContact struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	UserID       string    `gorm:"type:text;not null;index"`
	Name         string    `gorm:"type:text;not null"`
	Phone        string    `gorm:"type:text;not null"`
	Relationship string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}
