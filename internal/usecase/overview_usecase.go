package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"career-connect/internal/domain/job"
)

// OverviewUsecase serves the user-facing job listing: a status-filtered
// fetch followed by per-document backfill of the computed fields.
type OverviewUsecase interface {
	ListOverview(ctx context.Context, statusFilter string) ([]job.Job, error)
	GetOverviewDetail(ctx context.Context, id string) (job.OverviewDetail, error)
}

type Overview struct {
	jobs   job.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewOverviewUsecase(jobs job.Repository, logger *log.Logger) *Overview {
	return &Overview{jobs: jobs, logger: logger, now: time.Now}
}

func (u *Overview) ListOverview(ctx context.Context, statusFilter string) ([]job.Job, error) {
	filter := job.ParseStatusFilter(statusFilter)
	today := job.Today(u.now())

	rows, err := u.jobs.ListByStatus(ctx, filter, today)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Overview] list failed filter=%s: %v", filter, err)
		}
		return nil, ErrInternal
	}

	for i := range rows {
		rows[i].Normalize(today)
	}
	return rows, nil
}

func (u *Overview) GetOverviewDetail(ctx context.Context, id string) (job.OverviewDetail, error) {
	d, err := u.jobs.GetDetailByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, job.ErrNotFound):
			return job.OverviewDetail{}, ErrNotFound
		case errors.Is(err, job.ErrInvalidID):
			return job.OverviewDetail{}, ErrInvalidInput
		default:
			if u.logger != nil {
				u.logger.Printf("[Overview] detail failed id=%s: %v", id, err)
			}
			return job.OverviewDetail{}, ErrInternal
		}
	}
	return d, nil
}
