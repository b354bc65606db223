package application

import (
	"context"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	"github.com/google/uuid"
)

type SubmitInput struct {
	UserID     string
	SchemeID   string
	SchemeName string
	Notes      string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(ctx context.Context, actor authz.Actor, input SubmitInput) (*Application, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.SchemeID = strings.TrimSpace(input.SchemeID)
	input.SchemeName = strings.TrimSpace(input.SchemeName)
	if input.UserID == "" || input.SchemeID == "" || input.SchemeName == "" {
		return nil, ErrMissingField
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, input.UserID) {
		return nil, authz.ErrForbidden
	}

	app := &Application{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		SchemeID:   input.SchemeID,
		SchemeName: input.SchemeName,
		Notes:      strings.TrimSpace(input.Notes),
		Status:     StatusPending,
		AppliedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// List returns every application for admins and only the actor's own
// otherwise. The filter is applied server-side.
func (s *Service) List(ctx context.Context, actor authz.Actor) ([]Application, error) {
	if authz.Allow(actor, authz.ActionListAll, "") {
		return s.repo.List(ctx, "")
	}
	return s.repo.List(ctx, actor.Email)
}

// UpdateStatus advances a pending application to Approved or Rejected.
func (s *Service) UpdateStatus(ctx context.Context, actor authz.Actor, id, status string) (*Application, error) {
	if !authz.Allow(actor, authz.ActionReviewApplication, "") {
		return nil, authz.ErrForbidden
	}
	if status != StatusApproved && status != StatusRejected {
		return nil, ErrInvalidStatus
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Status = status
	if err := s.repo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}
