package scheme

import "time"

// Scheme is a welfare scheme in the catalog. Names are not unique; the
// catalog is freely repeatable.
type Scheme struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	Eligibility string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}
