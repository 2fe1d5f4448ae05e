package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

type EventRepository interface {
	Create(ctx context.Context, ev *entity.Event) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	List(ctx context.Context, filter entity.EventFilter) ([]*entity.Event, error)
	Update(ctx context.Context, ev *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type eventRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewEventRepository(pool *pgxpool.Pool, logger *slog.Logger) EventRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &eventRepository{pool: pool, logger: logger}
}

const eventColumns = `id, title, category, school, event_date, event_time, location, organizer,
	registration_deadline, description, email, phone, poster_path, raw_text,
	needs_review, created_by, created_at, updated_at`

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var ev entity.Event
	err := row.Scan(
		&ev.ID, &ev.Title, &ev.Category, &ev.School, &ev.Date, &ev.Time,
		&ev.Location, &ev.Organizer, &ev.RegistrationDeadline, &ev.Description,
		&ev.Email, &ev.Phone, &ev.PosterPath, &ev.RawText, &ev.NeedsReview,
		&ev.CreatedBy, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepository) Create(ctx context.Context, ev *entity.Event) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (title, category, school, event_date, event_time, location, organizer,
			registration_deadline, description, email, phone, poster_path, raw_text,
			needs_review, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING `+eventColumns,
		ev.Title, ev.Category, ev.School, ev.Date, ev.Time, ev.Location, ev.Organizer,
		ev.RegistrationDeadline, ev.Description, ev.Email, ev.Phone, ev.PosterPath,
		ev.RawText, ev.NeedsReview, ev.CreatedBy,
	)
	created, err := scanEvent(row)
	if err != nil {
		r.logger.Error("failed to create event", "title", ev.Title, "error", err)
		return nil, common.WrapError(err, "create event")
	}
	return created, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to get event", "id", id, "error", err)
		return nil, common.WrapError(err, "get event")
	}
	return ev, nil
}

func (r *eventRepository) List(ctx context.Context, filter entity.EventFilter) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	args := []any{}
	n := 0
	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}

	if filter.Category != nil {
		query += ` AND category = ` + next()
		args = append(args, *filter.Category)
	}
	if filter.School != nil {
		query += ` AND school = ` + next()
		args = append(args, *filter.School)
	}
	if filter.FromDate != nil {
		query += ` AND event_date >= ` + next()
		args = append(args, filter.FromDate.Format("2006-01-02"))
	}
	if filter.ToDate != nil {
		query += ` AND event_date <= ` + next()
		args = append(args, filter.ToDate.Format("2006-01-02"))
	}
	query += ` ORDER BY event_date, created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list events", "error", err)
		return nil, common.WrapError(err, "list events")
	}
	defer rows.Close()

	var events []*entity.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan event")
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, ev *entity.Event) (*entity.Event, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE events SET title=$2, category=$3, school=$4, event_date=$5, event_time=$6,
			location=$7, organizer=$8, registration_deadline=$9, description=$10,
			email=$11, phone=$12, needs_review=$13, updated_at=now()
		WHERE id = $1
		RETURNING `+eventColumns,
		ev.ID, ev.Title, ev.Category, ev.School, ev.Date, ev.Time, ev.Location,
		ev.Organizer, ev.RegistrationDeadline, ev.Description, ev.Email, ev.Phone,
		ev.NeedsReview,
	)
	updated, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %s: %w", ev.ID, common.ErrNotFound)
		}
		r.logger.Error("failed to update event", "id", ev.ID, "error", err)
		return nil, common.WrapError(err, "update event")
	}
	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete event", "id", id, "error", err)
		return common.WrapError(err, "delete event")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", id, common.ErrNotFound)
	}
	return nil
}
