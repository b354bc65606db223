package db

import (
	"time"

	"welfare-app-go/internal/domain/authn"
	"welfare-app-go/internal/domain/grievance"
	"welfare-app-go/internal/domain/listing"
	"welfare-app-go/internal/domain/scheme"
	"welfare-app-go/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed inserts demo data into empty tables: the scheme catalog, a couple of
// marketplace listings and grievances, and three demo accounts (password
// "password"). Tables that already hold rows are left alone.
func Seed(db *gorm.DB, bcryptCost int, log logger.Logger) error {
	if err := seedSchemes(db, log); err != nil {
		return err
	}
	if err := seedListings(db, log); err != nil {
		return err
	}
	if err := seedGrievances(db, log); err != nil {
		return err
	}
	return seedAccounts(db, bcryptCost, log)
}

func seedSchemes(db *gorm.DB, log logger.Logger) error {
	var count int64
	if err := db.Model(&scheme.Scheme{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	schemes := []scheme.Scheme{
		{
			ID:          uuid.NewString(),
			Name:        "Educational Grant",
			Description: "Financial assistance for children's education.",
			Eligibility: "All ranks, minimum 2 years service",
			Category:    "Education",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Medical Aid for Dependents",
			Description: "Coverage for medical expenses of family members.",
			Eligibility: "All ranks",
			Category:    "Health",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Housing Subsidy",
			Description: "Support for home purchase or construction.",
			Eligibility: "Officers and JCOs, minimum 10 years service",
			Category:    "Housing",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Directorate General Resettlement (DGR) Schemes",
			Description: "Promotes resettlement opportunities for ex-servicemen through training and employment initiatives.",
			Eligibility: "Ex-servicemen seeking employment or entrepreneurial opportunities.",
			Category:    "Resettlement",
			CreatedAt:   now,
		},
	}
	if err := db.Create(&schemes).Error; err != nil {
		return err
	}

	log.Info("seed: schemes populated", "count", len(schemes))
	return nil
}

func seedListings(db *gorm.DB, log logger.Logger) error {
	var count int64
	if err := db.Model(&listing.Listing{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	listings := []listing.Listing{
		{
			ID:          uuid.NewString(),
			UserID:      "admin@example.com",
			Type:        listing.TypeBook,
			Title:       "Old Engineering Textbooks",
			Description: "Collection of engineering textbooks. Good condition.",
			ContactInfo: "admin@example.com",
			PostedAt:    now,
		},
		{
			ID:          uuid.NewString(),
			UserID:      "officer@example.com",
			Type:        listing.TypeHousing,
			Title:       "2BHK Apartment for Rent",
			Description: "Spacious 2BHK apartment near cantonment area. Available from next month.",
			ContactInfo: "officer@example.com",
			PostedAt:    now,
		},
	}
	if err := db.Create(&listings).Error; err != nil {
		return err
	}

	log.Info("seed: marketplace listings populated", "count", len(listings))
	return nil
}

func seedGrievances(db *gorm.DB, log logger.Logger) error {
	var count int64
	if err := db.Model(&grievance.Grievance{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	grievances := []grievance.Grievance{
		{
			ID:       uuid.NewString(),
			UserID:   "family@example.com",
			Subject:  "Delay in Pension Disbursement",
			Details:  "My father's pension has been delayed for the last two months. Need urgent assistance.",
			Priority: grievance.PriorityHigh,
			Status:   grievance.StatusOpen,
			FiledAt:  now,
		},
		{
			ID:       uuid.NewString(),
			UserID:   "officer@example.com",
			Subject:  "Issue with ECHS Card Renewal",
			Details:  "Facing problems with ECHS card renewal online portal. It shows an error every time.",
			Priority: grievance.PriorityMedium,
			Status:   grievance.StatusOpen,
			FiledAt:  now,
		},
	}
	if err := db.Create(&grievances).Error; err != nil {
		return err
	}

	log.Info("seed: grievances populated", "count", len(grievances))
	return nil
}

func seedAccounts(db *gorm.DB, bcryptCost int, log logger.Logger) error {
	var count int64
	if err := db.Model(&authn.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	accounts := []authn.Account{
		{ID: uuid.NewString(), Email: "admin@example.com", PasswordHash: string(hash), Role: authn.RoleAdmin, CreatedAt: now},
		{ID: uuid.NewString(), Email: "officer@example.com", PasswordHash: string(hash), Role: authn.RoleOfficer, CreatedAt: now},
		{ID: uuid.NewString(), Email: "family@example.com", PasswordHash: string(hash), Role: authn.RoleFamily, CreatedAt: now},
	}
	if err := db.Create(&accounts).Error; err != nil {
		return err
	}

	log.Info("seed: demo accounts populated", "count", len(accounts))
	return nil
}
