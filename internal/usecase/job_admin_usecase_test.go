package usecase

import (
	"context"
	"errors"
	"testing"

	"career-connect/internal/domain/job"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestJobAdmin_CreateRequiresTitle(t *testing.T) {
	uc := NewJobAdminUsecase(newMockJobRepo(), nil)

	_, err := uc.CreateJob(context.Background(), CreateJobInput{Title: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobAdmin_CreateSetsDefaults(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewJobAdminUsecase(repo, nil)
	uc.now = fixedNow

	created, err := uc.CreateJob(context.Background(), CreateJobInput{Title: "Analyst", CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != job.StatusLive {
		t.Fatalf("status = %q, want live", created.Status)
	}
	if created.Views != 0 || created.Pinned {
		t.Fatalf("fresh job should start at 0 views, unpinned")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestJobAdmin_UpdateStripsImmutableFields(t *testing.T) {
	repo := newMockJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{Title: "Analyst"})

	uc := NewJobAdminUsecase(repo, nil)

	_, err := uc.UpdateJob(context.Background(), j.ID.Hex(), map[string]any{
		"_id":        "tamper",
		"created_at": "tamper",
		"title":      "Senior Analyst",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := repo.lastUpdate["_id"]; ok {
		t.Fatalf("_id leaked into update")
	}
	if _, ok := repo.lastUpdate["created_at"]; ok {
		t.Fatalf("created_at leaked into update")
	}
	if repo.lastUpdate["title"] != "Senior Analyst" {
		t.Fatalf("title missing from update: %v", repo.lastUpdate)
	}
}

func TestJobAdmin_UpdateWithOnlyImmutableFieldsRejected(t *testing.T) {
	repo := newMockJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{Title: "Analyst"})

	uc := NewJobAdminUsecase(repo, nil)

	_, err := uc.UpdateJob(context.Background(), j.ID.Hex(), map[string]any{"_id": "x"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobAdmin_TogglePinFlipsBothWays(t *testing.T) {
	repo := newMockJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{Title: "Analyst"})

	uc := NewJobAdminUsecase(repo, nil)

	pinned, err := uc.TogglePin(context.Background(), j.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !pinned {
		t.Fatalf("first toggle should pin")
	}

	pinned, err = uc.TogglePin(context.Background(), j.ID.Hex())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pinned {
		t.Fatalf("second toggle should unpin")
	}
}

func TestJobAdmin_DeleteMissingIsNotFound(t *testing.T) {
	uc := NewJobAdminUsecase(newMockJobRepo(), nil)

	err := uc.DeleteJob(context.Background(), bson.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobAdmin_IncrementViews(t *testing.T) {
	repo := newMockJobRepo()
	j, _ := repo.Create(context.Background(), job.Job{Title: "Analyst"})

	uc := NewJobAdminUsecase(repo, nil)

	if err := uc.IncrementViews(context.Background(), j.ID.Hex()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.viewIncs[j.ID.Hex()] != 1 {
		t.Fatalf("views not incremented")
	}
}
