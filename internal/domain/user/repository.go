package user

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	SetVerified(ctx context.Context, id string, verified bool) error
	SetPasswordHash(ctx context.Context, id string, hash string) error
	UpdateProfile(ctx context.Context, id string, name, phone string) error
}

// AdminRepository answers the one question asked of the admins collection:
// is this user an administrator. It is consulted once, at token mint time;
// the answer travels in the token as a claim afterwards.
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}
