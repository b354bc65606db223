package listing

import "time"

const (
	TypeBook      = "book"
	TypeEquipment = "equipment"
	TypeHousing   = "housing"
)

// Listing is a marketplace post. Listings are globally visible; mutation is
// restricted to the owner or an admin.
type Listing struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	UserID      string    `gorm:"type:text;not null;index"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null"`
	ContactInfo string    `gorm:"type:text;not null"`
	PostedAt    time.Time `gorm:"not null"`
}

func (Listing) TableName() string {
	return "marketplace_listings"
}

func ValidType(t string) bool {
	switch t {
	case TypeBook, TypeEquipment, TypeHousing:
		return true
	default:
		return false
	}
}
