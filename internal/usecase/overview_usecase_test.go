package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-connect/internal/domain/job"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestOverview_ListLive_NormalizesMissingFields(t *testing.T) {
	repo := newMockJobRepo()
	repo.listed = []job.Job{{ID: bson.NewObjectID(), Title: "Clerk"}}

	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	out, err := uc.ListOverview(context.Background(), "live")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 job, got %d", len(out))
	}
	if out[0].Status != job.StatusLive {
		t.Fatalf("status = %q, want live", out[0].Status)
	}
	if out[0].Views != 0 {
		t.Fatalf("views = %d, want 0", out[0].Views)
	}
	if repo.lastToday != "2025-06-15" {
		t.Fatalf("today passed to repo = %q", repo.lastToday)
	}
}

func TestOverview_ExpiredJobExcludedFromLive(t *testing.T) {
	repo := newMockJobRepo()
	repo.listed = []job.Job{{ID: bson.NewObjectID(), Title: "Old", EndDate: "2020-01-01"}}

	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	live, err := uc.ListOverview(context.Background(), "live")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(live) != 0 {
		t.Fatalf("expired job leaked into live listing")
	}

	expired, err := uc.ListOverview(context.Background(), "expired")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(expired) != 1 {
		t.Fatalf("expected 1 expired job, got %d", len(expired))
	}
	if expired[0].Status != job.StatusExpired {
		t.Fatalf("status = %q, want expired", expired[0].Status)
	}
}

func TestOverview_StaleLiveStatusStillListedAsLive(t *testing.T) {
	// Disjunctive policy: a past end_date does not exclude a document whose
	// stored status says live.
	repo := newMockJobRepo()
	repo.listed = []job.Job{{ID: bson.NewObjectID(), EndDate: "2020-01-01", Status: job.StatusLive}}

	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	live, err := uc.ListOverview(context.Background(), "live")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(live) != 1 {
		t.Fatalf("stored live status should win, got %d results", len(live))
	}
}

func TestOverview_AllReturnsEverything(t *testing.T) {
	repo := newMockJobRepo()
	repo.listed = []job.Job{
		{ID: bson.NewObjectID(), EndDate: "2020-01-01"},
		{ID: bson.NewObjectID()},
		{ID: bson.NewObjectID(), Status: job.StatusDraft},
	}

	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	out, err := uc.ListOverview(context.Background(), "all")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected full collection, got %d", len(out))
	}
}

func TestOverview_UnknownFilterDefaultsToLive(t *testing.T) {
	repo := newMockJobRepo()
	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	if _, err := uc.ListOverview(context.Background(), "bogus"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastFilter != job.FilterLive {
		t.Fatalf("filter = %q, want live", repo.lastFilter)
	}
}

func TestOverview_StoreFaultIsInternal(t *testing.T) {
	repo := newMockJobRepo()
	repo.listErr = errors.New("boom")

	uc := NewOverviewUsecase(repo, nil)
	uc.now = fixedNow

	if _, err := uc.ListOverview(context.Background(), "live"); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestOverview_DetailNotFound(t *testing.T) {
	uc := NewOverviewUsecase(newMockJobRepo(), nil)
	uc.now = fixedNow

	_, err := uc.GetOverviewDetail(context.Background(), bson.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
