package authn

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo Repository
	cost int
}

func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: bcryptCost}
}

// Register creates an account with a bcrypt-hashed password. Email matching
// is exact and case-sensitive, same as lookup at login time.
func (s *Service) Register(ctx context.Context, email, password, role string) (*Account, error) {
	email = strings.TrimSpace(email)
	role = strings.TrimSpace(role)
	if email == "" || password == "" || role == "" {
		return nil, ErrMissingField
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	taken, err := s.repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	account := &Account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password, so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// Authenticate resolves an actor email to its account. Used by the identity
// middleware so the role on a request is always the stored one.
func (s *Service) Authenticate(ctx context.Context, email string) (*Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrAccountNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}
