package savedjob

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("saved job not found")

type Repository interface {
	// ListByUser returns the user's associations in store iteration order.
	// An unknown user yields an empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]SavedJob, error)

	Exists(ctx context.Context, userID, jobID string) (bool, error)
	Create(ctx context.Context, s SavedJob) error

	// Delete removes the (user, job) association and returns ErrNotFound
	// when nothing matched.
	Delete(ctx context.Context, userID, jobID string) error
}
