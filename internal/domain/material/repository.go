package material

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("study material not found")
	ErrInvalidID = errors.New("invalid study material id")
)

// ListFilter narrows a listing. Empty fields match everything.
type ListFilter struct {
	Category string
	Type     string
}

type Repository interface {
	Create(ctx context.Context, m Material) (Material, error)
	GetByID(ctx context.Context, id string) (Material, error)
	List(ctx context.Context, f ListFilter) ([]Material, error)
	Update(ctx context.Context, id string, fields map[string]any) (Material, error)
	Delete(ctx context.Context, id string) error
}
