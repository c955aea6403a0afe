package repository

import (
	"context"
	"errors"

	"alumni-connect/internal/database"
	"alumni-connect/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, full_name, email, password_hash, university, passout_year,
	location, company, domain, phone, profile_picture, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, university, passout_year,
			location, company, domain, phone, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.University, u.PassoutYear,
		u.Location, u.Company, u.Domain, u.Phone, u.ProfilePicture,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, id uuid.UUID, p user.Patch) (user.User, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users SET
			full_name       = COALESCE($2, full_name),
			location        = COALESCE($3, location),
			company         = COALESCE($4, company),
			domain          = COALESCE($5, domain),
			phone           = COALESCE($6, phone),
			profile_picture = COALESCE($7, profile_picture),
			updated_at      = now()
		WHERE id = $1
		RETURNING `+userColumns,
		id, p.FullName, p.Location, p.Company, p.Domain, p.Phone, p.ProfilePicture,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) List(ctx context.Context, limit int) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type userRow interface {
	Scan(dest ...any) error
}

func scanUser(row userRow) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.University, &u.PassoutYear,
		&u.Location, &u.Company, &u.Domain, &u.Phone, &u.ProfilePicture,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
