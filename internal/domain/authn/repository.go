package authn

import "context"

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}
