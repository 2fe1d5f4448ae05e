package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *entity.Registration) (*entity.Registration, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Registration, error)
}

type registrationRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewRegistrationRepository(pool *pgxpool.Pool, logger *slog.Logger) RegistrationRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationRepository{pool: pool, logger: logger}
}

const registrationColumns = `id, event_id, student_id, student_name, email, team_name, team_members, registered_at`

func scanRegistration(row pgx.Row) (*entity.Registration, error) {
	var reg entity.Registration
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.StudentID, &reg.StudentName, &reg.Email,
		&reg.TeamName, &reg.TeamMembers, &reg.RegisteredAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) Create(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO registrations (event_id, student_id, student_name, email, team_name, team_members)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+registrationColumns,
		reg.EventID, reg.StudentID, reg.StudentName, reg.Email, reg.TeamName, reg.TeamMembers,
	)
	created, err := scanRegistration(row)
	if err != nil {
		r.logger.Error("failed to create registration", "event_id", reg.EventID, "student_id", reg.StudentID, "error", err)
		return nil, common.WrapError(err, "create registration")
	}
	return created, nil
}

func (r *registrationRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Registration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1 ORDER BY registered_at`, eventID)
	if err != nil {
		r.logger.Error("failed to list registrations", "event_id", eventID, "error", err)
		return nil, common.WrapError(err, "list registrations")
	}
	defer rows.Close()

	var regs []*entity.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan registration")
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
