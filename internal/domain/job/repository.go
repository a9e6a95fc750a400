package job

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("job not found")
	ErrInvalidID = errors.New("invalid job id")
)

// StatusFilter selects which postings an overview listing returns.
type StatusFilter string

const (
	FilterLive    StatusFilter = "live"
	FilterExpired StatusFilter = "expired"
	FilterAll     StatusFilter = "all"
)

// ParseStatusFilter maps a raw query value to a filter. Anything
// unrecognized falls back to live; the value is never rejected.
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case FilterExpired:
		return FilterExpired
	case FilterAll:
		return FilterAll
	default:
		return FilterLive
	}
}

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	GetDetailByID(ctx context.Context, id string) (OverviewDetail, error)

	// List returns every posting, newest first. Used by the admin surface.
	List(ctx context.Context) ([]Job, error)

	// ListByStatus applies the overview predicate for the given day string.
	// For FilterLive a document matches when it lacks end_date, or end_date
	// is strictly after today, or stored status is "live"; FilterExpired is
	// the symmetric disjunction. FilterAll applies no predicate.
	ListByStatus(ctx context.Context, filter StatusFilter, today string) ([]Job, error)

	// ListByIDs resolves a batch of hex ids in one query. An empty batch
	// must yield an empty result, never an unfiltered scan. Unknown ids are
	// skipped, not errors.
	ListByIDs(ctx context.Context, ids []string) ([]Job, error)

	// Update applies a partial $set of the given fields plus updated_at.
	Update(ctx context.Context, id string, fields map[string]any) (Job, error)
	Delete(ctx context.Context, id string) error

	SetPinned(ctx context.Context, id string, pinned bool) error
	IncrementViews(ctx context.Context, id string) error
}
