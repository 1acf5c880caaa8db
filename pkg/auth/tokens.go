package auth

import (
	"context"

	"github.com/artem13815/users/pkg/user"
)

// TokenGenerator abstracts access token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, u user.User) (string, error)
}
