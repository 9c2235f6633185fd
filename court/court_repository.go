package court

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

const courtColumns = `id, name, type, image, location, price_per_hour, slot_times, description, features, status, created_at, updated_at`

func scanCourt(row pgx.Row) (Court, error) {
	var court Court
	err := row.Scan(
		&court.ID,
		&court.Name,
		&court.Type,
		&court.Image,
		&court.Location,
		&court.PricePerHour,
		&court.SlotTimes,
		&court.Description,
		&court.Features,
		&court.Status,
		&court.CreatedAt,
		&court.UpdatedAt,
	)

	return court, err
}

func (r *Repository) ListCourts(ctx context.Context, filter Filter) ([]Court, int, error) {
	where := `
		WHERE ($1 = '' OR name ILIKE $2 OR type ILIKE $2 OR location ILIKE $2)
		AND ($3 = '' OR status = $3)
	`
	pattern := database.ContainsPattern(filter.Search)

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM club.courts `+where, filter.Search, pattern, filter.Status).Scan(&total)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to count courts: %w", err)
	}

	sql := `SELECT ` + courtColumns + ` FROM club.courts ` + where + `
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5;
	`

	rows, err := r.db.Query(ctx, sql, filter.Search, pattern, filter.Status, filter.Limit, filter.Offset())

	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	courts := []Court{}

	for rows.Next() {
		court, err := scanCourt(rows)

		if err != nil {
			return nil, 0, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, total, nil
}

func (r *Repository) GetCourtByID(ctx context.Context, id string) (Court, error) {
	sql := `SELECT ` + courtColumns + ` FROM club.courts WHERE id::text = $1;`

	court, err := scanCourt(r.db.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court '%v': %w", id, err)
	}

	return court, nil
}

func (r *Repository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
		INSERT INTO club.courts(
		name, type, image, location, price_per_hour, slot_times, description, features, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + courtColumns + `;
	`

	inserted, err := scanCourt(r.db.QueryRow(ctx, sql,
		court.Name,
		court.Type,
		court.Image,
		court.Location,
		court.PricePerHour,
		court.SlotTimes,
		court.Description,
		court.Features,
		court.Status,
	))

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", err)
	}

	return inserted, nil
}

func (r *Repository) UpdateCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
		UPDATE club.courts
		SET
			name=$1,
			type=$2,
			image=$3,
			location=$4,
			price_per_hour=$5,
			slot_times=$6,
			description=$7,
			features=$8,
			status=$9,
			updated_at=now()
		WHERE id::text=$10
		RETURNING ` + courtColumns + `;
	`

	updated, err := scanCourt(r.db.QueryRow(ctx, sql,
		court.Name,
		court.Type,
		court.Image,
		court.Location,
		court.PricePerHour,
		court.SlotTimes,
		court.Description,
		court.Features,
		court.Status,
		court.ID,
	))

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to update court: %w", err)
	}

	return updated, nil
}

func (r *Repository) DeleteCourt(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM club.courts WHERE id::text = $1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete court '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func (r *Repository) CountCourts(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM club.courts;`).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count courts: %w", err)
	}

	return count, nil
}
