package listing

import "context"

type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	List(ctx context.Context) ([]Listing, error)
	GetByID(ctx context.Context, id string) (*Listing, error)
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id string) (bool, error)
}
