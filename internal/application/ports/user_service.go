package ports

import (
	"context"

	"filedrop-api/internal/domain/user"
)

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Signup(ctx context.Context, u user.User, password string) (*user.User, error)
}
