package user

import (
	"context"
	"database/sql"
	"errors"
	c "spendlog/internal/core/domain/common"
	"spendlog/internal/core/domain/user"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "user_email_idx"

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxUserRepository struct {
	db DBTX
}

func NewPgxRepository(db DBTX) *PgxUserRepository {
	if db == nil {
		panic("Argument db must not be nil.")
	}
	return &PgxUserRepository{db: db}
}

const userColumns = `
	id, email, password_hash, role, created_at,
	password_changed_at, password_reset_token_hash, password_reset_expires_at
`

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO "user" (email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		string(input.Role),
		input.CreatedAt,
	)
	u, err = scanUser(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return u, user.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE id = $1`,
		int64(id),
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user" WHERE email = $1`,
		string(email),
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) GetByPasswordResetTokenHash(
	ctx context.Context,
	hash user.PasswordResetTokenHash,
	now time.Time,
) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM "user"
		 WHERE password_reset_token_hash = $1 AND password_reset_expires_at > $2`,
		string(hash),
		now,
	)
	return r.getOne(row)
}

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
	changedAt time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user" SET password_hash = $1, password_changed_at = $2 WHERE id = $3`,
		string(password),
		changedAt,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id user.ID,
	hash user.PasswordResetTokenHash,
	expiresAt time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_reset_token_hash = $1, password_reset_expires_at = $2
		 WHERE id = $3`,
		string(hash),
		expiresAt,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) ClearPasswordResetToken(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE "user"
		 SET password_reset_token_hash = NULL, password_reset_expires_at = NULL
		 WHERE id = $1`,
		int64(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) getOne(row pgx.Row) (u user.User, err error) {
	u, err = scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	if err = u.Validate(); err != nil {
		return u, err
	}
	return u, nil
}

func scanUser(row pgx.Row) (u user.User, err error) {
	var (
		id                     int64
		email                  string
		passwordHash           string
		role                   string
		createdAt              time.Time
		passwordChangedAt      sql.NullTime
		passwordResetTokenHash sql.NullString
		passwordResetExpiresAt sql.NullTime
	)
	err = row.Scan(
		&id,
		&email,
		&passwordHash,
		&role,
		&createdAt,
		&passwordChangedAt,
		&passwordResetTokenHash,
		&passwordResetExpiresAt,
	)
	if err != nil {
		return u, err
	}
	return user.User{
		ID:                user.ID(id),
		Email:             c.Email(email),
		PasswordHash:      user.PasswordHash(passwordHash),
		Role:              user.Role(role),
		CreatedAt:         createdAt,
		PasswordChangedAt: c.NewOptional(passwordChangedAt.Time, passwordChangedAt.Valid),
		PasswordResetTokenHash: c.NewOptional(
			user.PasswordResetTokenHash(passwordResetTokenHash.String),
			passwordResetTokenHash.Valid,
		),
		PasswordResetExpiresAt: c.NewOptional(passwordResetExpiresAt.Time, passwordResetExpiresAt.Valid),
	}, nil
}
