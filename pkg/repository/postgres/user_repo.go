package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/users/pkg/user"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// DBTX is the subset of pgxpool.Pool used by the repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository implements auth.UserRepository and user.Repository on
// PostgreSQL (pgx). The schema is owned by the goose migrations.
type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	u.Email = strings.ToLower(u.Email)
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (uuid, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.UUID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return user.User{}, user.ErrUserAlreadyExists
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, uuid::text, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1
	`, strings.ToLower(email))

	var (
		u         user.User
		rawUUID   string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&u.ID, &rawUUID, &u.Email, &u.PasswordHash, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, fmt.Errorf("select user by email: %w", err)
	}
	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return user.User{}, fmt.Errorf("user %d uuid: %w", u.ID, err)
	}
	u.UUID = id
	u.CreatedAt = createdAt.UTC()
	u.UpdatedAt = updatedAt.UTC()
	return u, nil
}

const selectComplete = `
	SELECT u.id, u.uuid::text, u.email,
		COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}') AS roles
	FROM users u
	LEFT JOIN user_roles ur ON ur.user_id = u.id
	LEFT JOIN roles r ON r.id = ur.role_id
`

func (r *UserRepository) FindComplete(ctx context.Context, id int64) (user.Complete, error) {
	return r.scanComplete(r.db.QueryRow(ctx, selectComplete+`
	WHERE u.id = $1
	GROUP BY u.id
	`, id))
}

func (r *UserRepository) FindCompleteByUUID(ctx context.Context, id uuid.UUID) (user.Complete, error) {
	return r.scanComplete(r.db.QueryRow(ctx, selectComplete+`
	WHERE u.uuid = $1
	GROUP BY u.id
	`, id))
}

func (r *UserRepository) scanComplete(row pgx.Row) (user.Complete, error) {
	var (
		c       user.Complete
		rawUUID string
		names   []string
	)
	if err := row.Scan(&c.ID, &rawUUID, &c.Email, &names); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Complete{}, user.ErrNotFound
		}
		return user.Complete{}, fmt.Errorf("select complete user: %w", err)
	}
	id, err := uuid.Parse(rawUUID)
	if err != nil {
		return user.Complete{}, fmt.Errorf("user %d uuid: %w", c.ID, err)
	}
	c.UUID = id

	roles := make(user.Roles, 0, len(names))
	for _, n := range names {
		roles = append(roles, user.Role(n))
	}
	c.Roles = roles.Normalize()
	return c, nil
}

func (r *UserRepository) AssignRole(ctx context.Context, userID int64, role user.Role) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, r.id FROM roles r WHERE r.name = $2
	`, userID, string(role))
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return user.ErrRoleAlreadyAssigned
		case codeForeignKeyViolation:
			return user.ErrNotFound
		}
		return fmt.Errorf("assign role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %q is not seeded", user.ErrUnknownRole, role)
	}
	return nil
}

func (r *UserRepository) RevokeRole(ctx context.Context, userID int64, role user.Role) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_roles ur
		USING roles r
		WHERE ur.role_id = r.id AND ur.user_id = $1 AND r.name = $2
	`, userID, string(role))
	if err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return user.ErrNotFound
	}
	return nil
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
