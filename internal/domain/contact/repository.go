package contact

import "context"

type Repository interface {
	Create(ctx context.Context, contact *EmergencyContact) error
	ListByOwner(ctx context.Context, userID string) ([]EmergencyContact, error)
	GetByID(ctx context.Context, id string) (*EmergencyContact, error)
	Update(ctx context.Context, contact *EmergencyContact) error
	Delete(ctx context.Context, id string) (bool, error)
}
