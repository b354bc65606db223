package scheme

import "context"

type Repository interface {
	Create(ctx context.Context, scheme *Scheme) error
	List(ctx context.Context) ([]Scheme, error)
	Delete(ctx context.Context, id string) (bool, error)
}
