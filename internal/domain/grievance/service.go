package grievance

import (
	"context"
	"strings"
	"time"

	"welfare-app-go/internal/domain/authz"
	"github.com/google/uuid"
)

type FileInput struct {
	UserID   string
	Subject  string
	Details  string
	Priority string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// File creates a grievance. Status is forced to Open regardless of input and
// ResolvedAt starts unset.
func (s *Service) File(ctx context.Context, actor authz.Actor, input FileInput) (*Grievance, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Details = strings.TrimSpace(input.Details)
	input.Priority = strings.TrimSpace(input.Priority)
	if input.UserID == "" || input.Subject == "" || input.Details == "" || input.Priority == "" {
		return nil, ErrMissingField
	}
	if !ValidPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}
	if !authz.Allow(actor, authz.ActionMutateOwn, input.UserID) {
		return nil, authz.ErrForbidden
	}

	grievance := &Grievance{
		ID:       uuid.NewString(),
		UserID:   input.UserID,
		Subject:  input.Subject,
		Details:  input.Details,
		Priority: input.Priority,
		Status:   StatusOpen,
		FiledAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, grievance); err != nil {
		return nil, err
	}

	return grievance, nil
}

// List returns every grievance for admins and only the actor's own
// otherwise. The filter is applied server-side.
func (s *Service) List(ctx context.Context, actor authz.Actor) ([]Grievance, error) {
	if authz.Allow(actor, authz.ActionListAll, "") {
		return s.repo.List(ctx, "")
	}
	return s.repo.List(ctx, actor.Email)
}

// UpdateStatus moves a grievance to In Progress, Resolved, or Rejected.
// Entering a terminal status sets ResolvedAt; leaving one clears it, so the
// ResolvedAt-iff-terminal invariant holds after every call. Transitions are
// not ordered: Open may jump straight to a terminal status and a terminal
// grievance may return to In Progress.
func (s *Service) UpdateStatus(ctx context.Context, actor authz.Actor, id, status string) (*Grievance, error) {
	if !authz.Allow(actor, authz.ActionResolveGrievance, "") {
		return nil, authz.ErrForbidden
	}
	if !ValidTarget(status) {
		return nil, ErrInvalidStatus
	}

	grievance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	grievance.Status = status
	if Terminal(status) {
		now := time.Now().UTC()
		grievance.ResolvedAt = &now
	} else {
		grievance.ResolvedAt = nil
	}

	if err := s.repo.Update(ctx, grievance); err != nil {
		return nil, err
	}

	return grievance, nil
}
