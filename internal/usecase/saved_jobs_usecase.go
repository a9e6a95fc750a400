package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-connect/internal/domain/job"
	"career-connect/internal/domain/savedjob"
)

// SavedJobsUsecase manages a user's bookmarked postings. Resolution is two
// passes against the store: associations by user, then one batched fetch of
// the referenced jobs. The passes are not atomic; a job deleted in between
// simply drops out of the result.
type SavedJobsUsecase interface {
	ListSavedJobs(ctx context.Context, userID string) ([]job.Job, error)
	Save(ctx context.Context, userID, jobID string) error
	Unsave(ctx context.Context, userID, jobID string) error
}

type SavedJobs struct {
	jobs   job.Repository
	saved  savedjob.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewSavedJobsUsecase(jobs job.Repository, saved savedjob.Repository, logger *log.Logger) *SavedJobs {
	return &SavedJobs{jobs: jobs, saved: saved, logger: logger, now: time.Now}
}

func (u *SavedJobs) ListSavedJobs(ctx context.Context, userID string) ([]job.Job, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	assocs, err := u.saved.ListByUser(ctx, userID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] list associations failed user=%s: %v", userID, err)
		}
		return nil, ErrInternal
	}

	// A user with no saves resolves to an empty listing here; the batched
	// lookup must never run with an empty id set.
	if len(assocs) == 0 {
		return []job.Job{}, nil
	}

	ids := make([]string, 0, len(assocs))
	for _, a := range assocs {
		if a.JobID == "" {
			continue
		}
		ids = append(ids, a.JobID)
	}
	if len(ids) == 0 {
		return []job.Job{}, nil
	}

	jobs, err := u.jobs.ListByIDs(ctx, ids)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] resolve jobs failed user=%s: %v", userID, err)
		}
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *SavedJobs) Save(ctx context.Context, userID, jobID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidInput
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound), errors.Is(err, job.ErrInvalidID):
			return ErrNotFound
		default:
			if u.logger != nil {
				u.logger.Printf("[SavedJobs] job lookup failed job=%s: %v", jobID, err)
			}
			return ErrInternal
		}
	}

	exists, err := u.saved.Exists(ctx, userID, jobID)
	if err != nil {
		return ErrInternal
	}
	if exists {
		return nil
	}

	s := savedjob.SavedJob{
		UserID:  userID,
		JobID:   jobID,
		SavedAt: u.now().UTC(),
	}
	if err := u.saved.Create(ctx, s); err != nil {
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] save failed user=%s job=%s: %v", userID, jobID, err)
		}
		return ErrInternal
	}
	return nil
}

func (u *SavedJobs) Unsave(ctx context.Context, userID, jobID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidInput
	}

	if err := u.saved.Delete(ctx, userID, jobID); err != nil {
		if errors.Is(err, savedjob.ErrNotFound) {
			return ErrNotFound
		}
		if u.logger != nil {
			u.logger.Printf("[SavedJobs] unsave failed user=%s job=%s: %v", userID, jobID, err)
		}
		return ErrInternal
	}
	return nil
}
