package grievance

import (
	"context"
	"errors"

	domain "welfare-app-go/internal/domain/grievance"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, grievance *domain.Grievance) error {
	return r.db.WithContext(ctx).Create(grievance).Error
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]domain.Grievance, error) {
	query := r.db.WithContext(ctx).Model(&domain.Grievance{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var grievances []domain.Grievance
	if err := query.Order("filed_at asc").Find(&grievances).Error; err != nil {
		return nil, err
	}
	return grievances, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Grievance, error) {
	var grievance domain.Grievance
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&grievance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGrievanceNotFound
		}
		return nil, err
	}
	return &grievance, nil
}

func (r *PostgresRepository) Update(ctx context.Context, grievance *domain.Grievance) error {
	// resolved_at is written unconditionally so a nil value clears the column
	// when a grievance leaves a terminal status.
	return r.db.WithContext(ctx).
		Model(&domain.Grievance{}).
		Where("id = ?", grievance.ID).
		Updates(map[string]interface{}{
			"status":      grievance.Status,
			"resolved_at": grievance.ResolvedAt,
		}).Error
}
