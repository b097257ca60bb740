package user

import (
	"context"
)

type Repository interface {
	// FetchUserByEmail returns (nil, nil) when no user matches.
	// Duplicate emails are allowed; the oldest record wins.
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
}
