package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ebill-api/internal/model"
)

const userColumns = `user_id, username, email, password_hash, first_name, last_name, is_active, created_at, updated_at`

// poolIface is the slice of pgxpool.Pool the repository needs; tests
// substitute a pgxmock pool.
type poolIface interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository is the persistence-backed account directory. The
// users table carries unique constraints on username and email, which
// are the authoritative enforcement point for the uniqueness
// invariant; service-level existence checks are only a fast path.
type UserRepository struct {
	pool poolIface
}

func NewUserRepository(pool poolIface) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, userID string) (model.User, error) {
	return r.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userID)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	return r.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	return r.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) findBy(ctx context.Context, query string, arg any) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u model.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (user_id, username, email, password_hash, first_name, last_name, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.UserID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if conflictErr := classifyUniqueViolation(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// UpdateFields applies only the provided columns and returns the
// updated row.
func (r *UserRepository) UpdateFields(ctx context.Context, userID string, updates model.AccountUpdate) (model.User, error) {
	set := []string{"updated_at = now()"}
	args := []any{userID}

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	appendSet("username", updates.Username)
	appendSet("email", updates.Email)
	appendSet("first_name", updates.FirstName)
	appendSet("last_name", updates.LastName)

	query := `UPDATE users SET ` + strings.Join(set, ", ") +
		` WHERE user_id = $1 RETURNING ` + userColumns

	var u model.User
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrUserNotFound
	}
	if err != nil {
		if conflictErr := classifyUniqueViolation(err); conflictErr != nil {
			return model.User{}, conflictErr
		}
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}
	return nil
}

// classifyUniqueViolation maps a unique-constraint violation to the
// matching directory signal, so a concurrent duplicate write surfaces
// as the same conflict the pre-check reports.
func classifyUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch pgErr.ConstraintName {
	case "users_username_key":
		return model.ErrUsernameTaken
	case "users_email_key":
		return model.ErrEmailTaken
	}
	return fmt.Errorf("unique violation on %s: %w", pgErr.ConstraintName, err)
}
