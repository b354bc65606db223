package contact

import (
	"context"
	"errors"

	domain "welfare-app-go/internal/domain/contact"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, contact *domain.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, userID string) ([]domain.EmergencyContact, error) {
	var contacts []domain.EmergencyContact
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.EmergencyContact, error) {
	var contact domain.EmergencyContact
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *PostgresRepository) Update(ctx context.Context, contact *domain.EmergencyContact) error {
	return r.db.WithContext(ctx).
		Model(&domain.EmergencyContact{}).
		Where("id = ?", contact.ID).
		Updates(map[string]interface{}{
			"name":         contact.Name,
			"phone":        contact.Phone,
			"relationship": contact.Relationship,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.EmergencyContact{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
