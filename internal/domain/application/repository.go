package application

import "context"

type Repository interface {
	Create(ctx context.Context, app *Application) error
	// List returns every application when userID is empty, otherwise only the
	// given owner's, in insertion order.
	List(ctx context.Context, userID string) ([]Application, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	Update(ctx context.Context, app *Application) error
}
