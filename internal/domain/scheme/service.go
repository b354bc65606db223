package scheme

import (
	"context"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	"github.com/google/uuid"
)

type CreateInput struct {
	Name        string
	Description string
	Eligibility string
	Category    string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, actor authz.Actor, input CreateInput) (*Scheme, error) {
	if !authz.Allow(actor, authz.ActionManageScheme, "") {
		return nil, authz.ErrForbidden
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Eligibility = strings.TrimSpace(input.Eligibility)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" || input.Description == "" || input.Eligibility == "" || input.Category == "" {
		return nil, ErrMissingField
	}

	scheme := &Scheme{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Eligibility: input.Eligibility,
		Category:    input.Category,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, scheme); err != nil {
		return nil, err
	}

	return scheme, nil
}

// List is visible to every authenticated actor regardless of role.
func (s *Service) List(ctx context.Context) ([]Scheme, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	if !authz.Allow(actor, authz.ActionManageScheme, "") {
		return authz.ErrForbidden
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSchemeNotFound
	}
	return nil
}
