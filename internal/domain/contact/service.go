package contact

import (
	"context"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	"github.com/google/uuid"
)

type AddInput struct {
	UserID       string
	Name         string
	Phone        string
	Relationship string
}

// UpdateInput carries partial updates; nil fields are left untouched.
type UpdateInput struct {
	Name         *string
	Phone        *string
	Relationship *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, actor authz.Actor, input AddInput) (*EmergencyContact, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Relationship = strings.TrimSpace(input.Relationship)
	if input.UserID == "" || input.Name == "" || input.Phone == "" || input.Relationship == "" {
		return nil, ErrMissingField
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, input.UserID) {
		return nil, authz.ErrForbidden
	}

	contact := &EmergencyContact{
		ID:           uuid.NewString(),
		UserID:       input.UserID,
		Name:         input.Name,
		Phone:        input.Phone,
		Relationship: input.Relationship,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *Service) ListByOwner(ctx context.Context, actor authz.Actor, ownerID string) ([]EmergencyContact, error) {
	if !authz.Allow(actor, authz.ActionReadOwn, ownerID) {
		return nil, authz.ErrForbidden
	}
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update replaces only the provided fields. No concurrency token: the last
// write wins.
func (s *Service) Update(ctx context.Context, actor authz.Actor, id string, input UpdateInput) (*EmergencyContact, error) {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, contact.UserID) {
		return nil, authz.ErrForbidden
	}

	if input.Name != nil {
		contact.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		contact.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Relationship != nil {
		contact.Relationship = strings.TrimSpace(*input.Relationship)
	}
	if contact.Name == "" || contact.Phone == "" || contact.Relationship == "" {
		return nil, ErrMissingField
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *Service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, contact.UserID) {
		return authz.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrContactNotFound
	}
	return nil
}
