package auth

import (
	"context"
	"errors"

	"github.com/artem13815/users/pkg/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository abstracts persistence of credentials.
type UserRepository interface {
	// Create inserts u and returns it with the generated numeric ID.
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}
