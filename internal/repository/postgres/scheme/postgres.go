package scheme

import (
	"context"

	domain "welfare-app-go/internal/domain/scheme"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, scheme *domain.Scheme) error {
	return r.db.WithContext(ctx).Create(scheme).Error
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Scheme, error) {
	var schemes []domain.Scheme
	if err := r.db.WithContext(ctx).
		Order("created_at asc").
		Find(&schemes).Error; err != nil {
		return nil, err
	}
	return schemes, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Scheme{}, "id = ?", id)
	return result.RowsAffected > 0, result.Error
}
