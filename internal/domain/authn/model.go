package authn

import "time"

const (
	RoleFamily  = "family"
	RoleOfficer = "officer"
	RoleAdmin   = "admin"
)

type Account struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleFamily, RoleOfficer, RoleAdmin:
		return true
	default:
		return false
	}
}
