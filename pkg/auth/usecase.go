package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/users/pkg/user"
)

// UseCase describes authentication/registration behavior.
type UseCase interface {
	Register(ctx context.Context, email, password string) (Result, error)
	Login(ctx context.Context, email, password string) (Result, error)
}

type service struct {
	repo   UserRepository
	tokens TokenGenerator
	cost   int
}

// NewService returns the default UseCase. cost is the bcrypt cost; zero
// selects bcrypt.DefaultCost.
func NewService(repo UserRepository, tokens TokenGenerator, cost int) UseCase {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{repo: repo, tokens: tokens, cost: cost}
}

func (s *service) Register(ctx context.Context, email, password string) (Result, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Result{}, ErrInvalidCredentials
	}

	// best-effort; the unique index has the final word
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Result{}, user.ErrUserAlreadyExists
	} else if !errors.Is(err, user.ErrNotFound) {
		return Result{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return Result{}, err
	}

	now := time.Now().UTC()
	u, err := s.repo.Create(ctx, user.User{
		UUID:         uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return Result{}, err
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	return Result{User: u, Token: token}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (Result, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return Result{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, u)
	if err != nil {
		return Result{}, err
	}
	return Result{User: u, Token: token}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
