package listing

import (
	"context"
	"errors"

	domain "welfare-app-go/internal/domain/listing"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := r.db.WithContext(ctx).
		Order("posted_at asc").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	var listing domain.Listing
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *PostgresRepository) Update(ctx context.Context, listing *domain.Listing) error {
	return r.db.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("id = ?", listing.ID).
		Updates(map[string]interface{}{
			"type":         listing.Type,
			"title":        listing.Title,
			"description":  listing.Description,
			"contact_info": listing.ContactInfo,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Listing{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
