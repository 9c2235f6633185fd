package announcement

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/sports-club-backend/database"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

const announcementColumns = `id, title, content, type, status, priority,
	COALESCE(to_char(start_date, 'YYYY-MM-DD'), ''), COALESCE(to_char(end_date, 'YYYY-MM-DD'), ''),
	is_pinned, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (Announcement, error) {
	var a Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Type,
		&a.Status,
		&a.Priority,
		&a.StartDate,
		&a.EndDate,
		&a.IsPinned,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (r *Repository) ListAnnouncements(ctx context.Context, status Status, limit, offset int) ([]Announcement, int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM club.announcements WHERE ($1 = '' OR status = $1);`, status).Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	sql := `
		SELECT ` + announcementColumns + `
		FROM club.announcements
		WHERE ($1 = '' OR status = $1)
		ORDER BY is_pinned DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.db.Query(ctx, sql, status, limit, offset)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	defer rows.Close()

	announcements := []Announcement{}

	for rows.Next() {
		a, err := scanAnnouncement(rows)

		if err != nil {
			return nil, 0, fmt.Errorf("error scanning announcement row: %w", err)
		}

		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, total, nil
}

func (r *Repository) GetAnnouncementByID(ctx context.Context, id string) (Announcement, error) {
	a, err := scanAnnouncement(r.db.QueryRow(ctx, `SELECT `+announcementColumns+` FROM club.announcements WHERE id::text = $1;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Announcement{}, ErrAnnouncementNotFound
	}

	if err != nil {
		return Announcement{}, fmt.Errorf("failed to fetch announcement '%v': %w", id, err)
	}

	return a, nil
}

func (r *Repository) InsertAnnouncement(ctx context.Context, a Announcement) (Announcement, error) {
	sql := `
		INSERT INTO club.announcements(title, content, type, status, priority, start_date, end_date, is_pinned)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date, NULLIF($7, '')::date, $8)
		RETURNING ` + announcementColumns + `;
	`

	inserted, err := scanAnnouncement(r.db.QueryRow(ctx, sql,
		a.Title, a.Content, a.Type, a.Status, a.Priority, a.StartDate, a.EndDate, a.IsPinned))

	if err != nil {
		return Announcement{}, fmt.Errorf("failed to insert announcement: %w", err)
	}

	return inserted, nil
}

func (r *Repository) UpdateAnnouncement(ctx context.Context, a Announcement) (Announcement, error) {
	sql := `
		UPDATE club.announcements
		SET
			title=$1,
			content=$2,
			type=$3,
			status=$4,
			priority=$5,
			start_date=NULLIF($6, '')::date,
			end_date=NULLIF($7, '')::date,
			is_pinned=$8,
			updated_at=now()
		WHERE id::text=$9
		RETURNING ` + announcementColumns + `;
	`

	updated, err := scanAnnouncement(r.db.QueryRow(ctx, sql,
		a.Title, a.Content, a.Type, a.Status, a.Priority, a.StartDate, a.EndDate, a.IsPinned, a.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return Announcement{}, ErrAnnouncementNotFound
	}

	if err != nil {
		return Announcement{}, fmt.Errorf("failed to update announcement: %w", err)
	}

	return updated, nil
}

func (r *Repository) DeleteAnnouncement(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM club.announcements WHERE id::text = $1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete announcement '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAnnouncementNotFound
	}

	return nil
}
