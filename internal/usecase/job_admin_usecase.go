package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-connect/internal/domain/job"
)

// JobAdminUsecase is the administrative surface over the jobs collection:
// create, read, partial update, delete, pin toggling and view counting.
type JobAdminUsecase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (job.Job, error)
	GetJob(ctx context.Context, id string) (job.Job, error)
	ListJobs(ctx context.Context) ([]job.Job, error)
	UpdateJob(ctx context.Context, id string, fields map[string]any) (job.Job, error)
	DeleteJob(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (bool, error)
	IncrementViews(ctx context.Context, id string) error
}

type CreateJobInput struct {
	Title                   string
	CompanyName             string
	CompanyOverview         string
	RoleSummary             string
	KeyResponsibilities     string
	Description             string
	RequiredSkills          string
	EducationRequirements   string
	ExperienceLevel         string
	SalaryRange             string
	Benefits                string
	JobLocation             string
	WorkType                string
	WorkSchedule            string
	Department              string
	ApplicationInstructions string
	ApplicationDeadline     string
	ApplicationLink         string
	NotificationPDF         string
	ContactEmail            string
	ContactPhone            string
	EndDate                 string
}

type JobAdmin struct {
	jobs   job.Repository
	logger *log.Logger
	now    func() time.Time
}

func NewJobAdminUsecase(jobs job.Repository, logger *log.Logger) *JobAdmin {
	return &JobAdmin{jobs: jobs, logger: logger, now: time.Now}
}

func (u *JobAdmin) CreateJob(ctx context.Context, in CreateJobInput) (job.Job, error) {
	if strings.TrimSpace(in.Title) == "" {
		return job.Job{}, ErrInvalidInput
	}

	now := u.now().UTC()
	j := job.Job{
		Title:                   strings.TrimSpace(in.Title),
		CompanyName:             in.CompanyName,
		CompanyOverview:         in.CompanyOverview,
		RoleSummary:             in.RoleSummary,
		KeyResponsibilities:     in.KeyResponsibilities,
		Description:             in.Description,
		RequiredSkills:          in.RequiredSkills,
		EducationRequirements:   in.EducationRequirements,
		ExperienceLevel:         in.ExperienceLevel,
		SalaryRange:             in.SalaryRange,
		Benefits:                in.Benefits,
		JobLocation:             in.JobLocation,
		WorkType:                in.WorkType,
		WorkSchedule:            in.WorkSchedule,
		Department:              in.Department,
		ApplicationInstructions: in.ApplicationInstructions,
		ApplicationDeadline:     in.ApplicationDeadline,
		ApplicationLink:         in.ApplicationLink,
		NotificationPDF:         in.NotificationPDF,
		ContactEmail:            in.ContactEmail,
		ContactPhone:            in.ContactPhone,
		EndDate:                 in.EndDate,
		Status:                  job.StatusLive,
		Views:                   0,
		Pinned:                  false,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[JobAdmin] create failed: %v", err)
		}
		return job.Job{}, ErrInternal
	}
	return created, nil
}

func (u *JobAdmin) GetJob(ctx context.Context, id string) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, u.mapJobError(err, "get", id)
	}
	return j, nil
}

func (u *JobAdmin) ListJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := u.jobs.List(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[JobAdmin] list failed: %v", err)
		}
		return nil, ErrInternal
	}
	return rows, nil
}

// immutableJobFields are stripped from partial updates regardless of what
// the client sends.
var immutableJobFields = []string{"_id", "id", "created_at"}

func (u *JobAdmin) UpdateJob(ctx context.Context, id string, fields map[string]any) (job.Job, error) {
	for _, k := range immutableJobFields {
		delete(fields, k)
	}
	if len(fields) == 0 {
		return job.Job{}, ErrInvalidInput
	}

	j, err := u.jobs.Update(ctx, id, fields)
	if err != nil {
		return job.Job{}, u.mapJobError(err, "update", id)
	}
	return j, nil
}

func (u *JobAdmin) DeleteJob(ctx context.Context, id string) error {
	if err := u.jobs.Delete(ctx, id); err != nil {
		return u.mapJobError(err, "delete", id)
	}
	return nil
}

// TogglePin reads the current flag and writes its negation. This is a plain
// read-then-write, not compare-and-swap; concurrent toggles race and the
// last write wins.
func (u *JobAdmin) TogglePin(ctx context.Context, id string) (bool, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return false, u.mapJobError(err, "toggle pin", id)
	}

	next := !j.Pinned
	if err := u.jobs.SetPinned(ctx, id, next); err != nil {
		return false, u.mapJobError(err, "toggle pin", id)
	}
	return next, nil
}

func (u *JobAdmin) IncrementViews(ctx context.Context, id string) error {
	if err := u.jobs.IncrementViews(ctx, id); err != nil {
		return u.mapJobError(err, "increment views", id)
	}
	return nil
}

func (u *JobAdmin) mapJobError(err error, op, id string) error {
	switch {
	case errors.Is(err, job.ErrNotFound), errors.Is(err, job.ErrInvalidID):
		return ErrNotFound
	default:
		if u.logger != nil {
			u.logger.Printf("[JobAdmin] %s failed id=%s: %v", op, id, err)
		}
		return ErrInternal
	}
}
