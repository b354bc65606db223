package application

import (
	"context"
	"errors"

	domain "welfare-app-go/internal/domain/application"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, app *domain.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]domain.Application, error) {
	query := r.db.WithContext(ctx).Model(&domain.Application{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var applications []domain.Application
	if err := query.Order("applied_at asc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *PostgresRepository) Update(ctx context.Context, app *domain.Application) error {
	return r.db.WithContext(ctx).
		Model(&domain.Application{}).
		Where("id = ?", app.ID).
		Updates(map[string]interface{}{
			"status": app.Status,
			"notes":  app.Notes,
		}).Error
}
