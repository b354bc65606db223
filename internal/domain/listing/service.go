package listing

import (
	"context"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	"github.com/google/uuid"
)

type PublishInput struct {
	UserID      string
	Type        string
	Title       string
	Description string
	ContactInfo string
}

// UpdateInput carries partial updates; nil fields are left untouched.
type UpdateInput struct {
	Type        *string
	Title       *string
	Description *string
	ContactInfo *string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Publish(ctx context.Context, actor authz.Actor, input PublishInput) (*Listing, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Type = strings.TrimSpace(input.Type)
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.ContactInfo = strings.TrimSpace(input.ContactInfo)
	if input.UserID == "" || input.Type == "" || input.Title == "" || input.Description == "" || input.ContactInfo == "" {
		return nil, ErrMissingField
	}
	if !ValidType(input.Type) {
		return nil, ErrInvalidType
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, input.UserID) {
		return nil, authz.ErrForbidden
	}

	listing := &Listing{
		ID:          uuid.NewString(),
		UserID:      input.UserID,
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		ContactInfo: input.ContactInfo,
		PostedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// List is global: every authenticated actor sees every listing.
func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor authz.Actor, id string, input UpdateInput) (*Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, listing.UserID) {
		return nil, authz.ErrForbidden
	}

	if input.Type != nil {
		t := strings.TrimSpace(*input.Type)
		if !ValidType(t) {
			return nil, ErrInvalidType
		}
		listing.Type = t
	}
	if input.Title != nil {
		listing.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		listing.Description = strings.TrimSpace(*input.Description)
	}
	if input.ContactInfo != nil {
		listing.ContactInfo = strings.TrimSpace(*input.ContactInfo)
	}
	if listing.Title == "" || listing.Description == "" || listing.ContactInfo == "" {
		return nil, ErrMissingField
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *Service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, listing.UserID) {
		return authz.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrListingNotFound
	}
	return nil
}
