package grievance

import (
	"context"
	"errors"
	"testing"

	"welfare-app-go/internal/domain/authz"
)

type fakeGrievanceRepo struct {
	grievances map[string]*Grievance
	order      []string
}

func newFakeGrievanceRepo() *fakeGrievanceRepo {
	return &fakeGrievanceRepo{grievances: make(map[string]*Grievance)}
}

func (r *fakeGrievanceRepo) Create(ctx context.Context, grievance *Grievance) error {
	copied := *grievance
	r.grievances[grievance.ID] = &copied
	r.order = append(r.order, grievance.ID)
	return nil
}

func (r *fakeGrievanceRepo) List(ctx context.Context, userID string) ([]Grievance, error) {
	result := make([]Grievance, 0)
	for _, id := range r.order {
		g := r.grievances[id]
		if userID == "" || g.UserID == userID {
			result = append(result, *g)
		}
	}
	return result, nil
}

func (r *fakeGrievanceRepo) GetByID(ctx context.Context, id string) (*Grievance, error) {
	g, ok := r.grievances[id]
	if !ok {
		return nil, ErrGrievanceNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGrievanceRepo) Update(ctx context.Context, grievance *Grievance) error {
	if _, ok := r.grievances[grievance.ID]; !ok {
		return ErrGrievanceNotFound
	}
	copied := *grievance
	r.grievances[grievance.ID] = &copied
	return nil
}

var (
	familyActor = authz.Actor{ID: "1", Email: "a@x.com", Role: "family"}
	adminActor  = authz.Actor{ID: "2", Email: "admin@x.com", Role: "admin"}
)

func TestFileGrievance(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	g, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityHigh,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.Status != StatusOpen {
		t.Fatalf("expected Open, got %q", g.Status)
	}
	if g.ResolvedAt != nil {
		t.Fatalf("expected ResolvedAt unset on filing")
	}
	if g.FiledAt.IsZero() {
		t.Fatalf("expected FiledAt set")
	}
	if g.ID == "" {
		t.Fatalf("expected id assigned")
	}
}

func TestFileGrievanceMissingField(t *testing.T) {
	svc := NewService(newFakeGrievanceRepo())

	_, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "",
		Details:  "D",
		Priority: PriorityLow,
	})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestFileGrievanceInvalidPriority(t *testing.T) {
	svc := NewService(newFakeGrievanceRepo())

	_, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: "urgent",
	})
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestFileGrievanceForOtherOwner(t *testing.T) {
	svc := NewService(newFakeGrievanceRepo())

	_, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "someone-else@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityLow,
	})
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	g, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityHigh,
	})
	if err != nil {
		t.Fatalf("file: %v", err)
	}

	resolved, err := svc.UpdateStatus(context.Background(), adminActor, g.ID, StatusResolved)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if resolved.Status != StatusResolved {
		t.Fatalf("expected Resolved, got %q", resolved.Status)
	}
	if resolved.ResolvedAt == nil {
		t.Fatalf("expected ResolvedAt set on terminal status")
	}

	// Leaving the terminal state clears ResolvedAt again.
	reopened, err := svc.UpdateStatus(context.Background(), adminActor, g.ID, StatusInProgress)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Status != StatusInProgress {
		t.Fatalf("expected In Progress, got %q", reopened.Status)
	}
	if reopened.ResolvedAt != nil {
		t.Fatalf("expected ResolvedAt cleared on non-terminal status")
	}

	stored, _ := repo.GetByID(context.Background(), g.ID)
	if stored.ResolvedAt != nil {
		t.Fatalf("expected persisted ResolvedAt cleared")
	}
}

func TestUpdateStatusRejectedSetsResolvedAt(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	g, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityCritical,
	})
	if err != nil {
		t.Fatalf("file: %v", err)
	}

	// Open may jump straight to a terminal status without passing In Progress.
	rejected, err := svc.UpdateStatus(context.Background(), adminActor, g.ID, StatusRejected)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.ResolvedAt == nil {
		t.Fatalf("expected ResolvedAt set for Rejected")
	}
}

func TestUpdateStatusInvalidTargets(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	g, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityLow,
	})
	if err != nil {
		t.Fatalf("file: %v", err)
	}

	for _, target := range []string{StatusOpen, "Closed", ""} {
		if _, err := svc.UpdateStatus(context.Background(), adminActor, g.ID, target); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("target %q: expected ErrInvalidStatus, got %v", target, err)
		}
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	svc := NewService(newFakeGrievanceRepo())

	_, err := svc.UpdateStatus(context.Background(), adminActor, "missing", StatusResolved)
	if !errors.Is(err, ErrGrievanceNotFound) {
		t.Fatalf("expected ErrGrievanceNotFound, got %v", err)
	}
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	g, err := svc.File(context.Background(), familyActor, FileInput{
		UserID:   "a@x.com",
		Subject:  "S",
		Details:  "D",
		Priority: PriorityLow,
	})
	if err != nil {
		t.Fatalf("file: %v", err)
	}

	_, err = svc.UpdateStatus(context.Background(), familyActor, g.ID, StatusResolved)
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestListVisibility(t *testing.T) {
	repo := newFakeGrievanceRepo()
	svc := NewService(repo)

	otherActor := authz.Actor{ID: "3", Email: "b@x.com", Role: "officer"}
	if _, err := svc.File(context.Background(), familyActor, FileInput{UserID: "a@x.com", Subject: "S1", Details: "D1", Priority: PriorityLow}); err != nil {
		t.Fatalf("file: %v", err)
	}
	if _, err := svc.File(context.Background(), otherActor, FileInput{UserID: "b@x.com", Subject: "S2", Details: "D2", Priority: PriorityHigh}); err != nil {
		t.Fatalf("file: %v", err)
	}

	all, err := svc.List(context.Background(), adminActor)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected admin to see 2 grievances, got %d", len(all))
	}

	own, err := svc.List(context.Background(), familyActor)
	if err != nil {
		t.Fatalf("own list: %v", err)
	}
	if len(own) != 1 || own[0].UserID != "a@x.com" {
		t.Fatalf("expected only own grievances, got %+v", own)
	}
}
