package grievance

import "context"

type Repository interface {
	Create(ctx context.Context, grievance *Grievance) error
	// List returns every grievance when userID is empty, otherwise only the
	// given owner's, in insertion order.
	List(ctx context.Context, userID string) ([]Grievance, error)
	GetByID(ctx context.Context, id string) (*Grievance, error)
	Update(ctx context.Context, grievance *Grievance) error
}
