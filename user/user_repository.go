package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/sports-club-backend/database"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

const userColumns = `id, email, display_name, photo_url, role, member_since, last_login, created_at`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.PhotoURL,
		&u.Role,
		&u.MemberSince,
		&u.LastLogin,
		&u.CreatedAt,
	)

	return u, err
}

// The role column is never written from account data.
func (r *Repository) upsert(ctx context.Context, account identity.Account, login bool) (User, error) {
	sql := `
		INSERT INTO club.users(id, email, display_name, photo_url, last_login)
		VALUES ($1, $2, $3, $4, CASE WHEN $5::boolean THEN now() END)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			photo_url = EXCLUDED.photo_url,
			last_login = CASE WHEN $5::boolean THEN now() ELSE users.last_login END
		RETURNING ` + userColumns + `;
	`

	u, err := scanUser(r.db.QueryRow(ctx, sql, account.UID, account.Email, account.DisplayName, account.PhotoURL, login))

	if err != nil {
		return User{}, fmt.Errorf("failed to upsert user '%v': %w", account.UID, err)
	}

	return u, nil
}

func (r *Repository) EnsureUser(ctx context.Context, account identity.Account) (User, error) {
	return r.upsert(ctx, account, false)
}

func (r *Repository) RecordLogin(ctx context.Context, account identity.Account) (User, error) {
	return r.upsert(ctx, account, true)
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM club.users WHERE id = $1;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user '%v': %w", id, err)
	}

	return u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM club.users WHERE lower(email) = lower($1);`, email))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with email '%v': %w", email, err)
	}

	return u, nil
}

func (r *Repository) ListUsers(ctx context.Context, search string, role identity.Role) ([]User, error) {
	sql := `
		SELECT ` + userColumns + ` FROM club.users
		WHERE ($1 = '' OR display_name ILIKE $2 OR email ILIKE $2)
		AND ($3 = '' OR role = $3)
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, sql, search, database.ContainsPattern(search), role)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	defer rows.Close()

	users := []User{}

	for rows.Next() {
		u, err := scanUser(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (r *Repository) SetRole(ctx context.Context, id string, role identity.Role) (User, error) {
	sql := `
		UPDATE club.users
		SET
			role = $1,
			member_since = CASE WHEN $1 = 'member' THEN COALESCE(member_since, now()) ELSE member_since END
		WHERE id = $2
		RETURNING ` + userColumns + `;
	`

	u, err := scanUser(r.db.QueryRow(ctx, sql, role, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to set role of user '%v': %w", id, err)
	}

	return u, nil
}

func (r *Repository) CountUsers(ctx context.Context) (Counts, error) {
	sql := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE role = 'member'),
			COUNT(*) FILTER (WHERE role = 'admin')
		FROM club.users;
	`

	var counts Counts
	err := r.db.QueryRow(ctx, sql).Scan(&counts.TotalUsers, &counts.TotalMembers, &counts.TotalAdmins)

	if err != nil {
		return Counts{}, fmt.Errorf("failed to count users: %w", err)
	}

	return counts, nil
}

// Promote turns a plain user into a member inside tx. Members and admins
// are left untouched; it reports whether the role changed.
func Promote(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	sql := `
		UPDATE club.users
		SET role = 'member', member_since = COALESCE(member_since, now())
		WHERE id = $1 AND role = 'user';
	`

	tag, err := tx.Exec(ctx, sql, id)

	if err != nil {
		return false, fmt.Errorf("failed to promote user '%v': %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}
