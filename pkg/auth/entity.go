package auth

import "github.com/artem13815/users/pkg/user"

// Result is returned by a successful registration or login.
type Result struct {
	User  user.User
	Token string
}
