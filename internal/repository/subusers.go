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

type SubUserRepository interface {
	Add(ctx context.Context, su *entity.SubUser) (*entity.SubUser, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.SubUser, error)
	UpdatePermissions(ctx context.Context, id uuid.UUID, perms entity.SubUserPermissions) (*entity.SubUser, error)
	Remove(ctx context.Context, id uuid.UUID, eventID uuid.UUID) error
}

type subUserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewSubUserRepository(pool *pgxpool.Pool, logger *slog.Logger) SubUserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &subUserRepository{pool: pool, logger: logger}
}

const subUserColumns = `id, event_id, name, username, role, can_mark_attendance, can_grant_od,
	can_view_reports, password_hash, created_at`

func scanSubUser(row pgx.Row) (*entity.SubUser, error) {
	var su entity.SubUser
	err := row.Scan(
		&su.ID, &su.EventID, &su.Name, &su.Username, &su.Role,
		&su.Permissions.MarkAttendance, &su.Permissions.GrantOD, &su.Permissions.ViewReports,
		&su.PasswordHash, &su.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &su, nil
}

func (r *subUserRepository) Add(ctx context.Context, su *entity.SubUser) (*entity.SubUser, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sub_users (event_id, name, username, role, can_mark_attendance, can_grant_od,
			can_view_reports, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING `+subUserColumns,
		su.EventID, su.Name, su.Username, su.Role,
		su.Permissions.MarkAttendance, su.Permissions.GrantOD, su.Permissions.ViewReports,
		su.PasswordHash,
	)
	created, err := scanSubUser(row)
	if err != nil {
		r.logger.Error("failed to add sub-user", "event_id", su.EventID, "username", su.Username, "error", err)
		return nil, common.WrapError(err, "add sub-user")
	}
	return created, nil
}

func (r *subUserRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.SubUser, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+subUserColumns+` FROM sub_users WHERE event_id = $1 ORDER BY created_at`, eventID)
	if err != nil {
		r.logger.Error("failed to list sub-users", "event_id", eventID, "error", err)
		return nil, common.WrapError(err, "list sub-users")
	}
	defer rows.Close()

	var subUsers []*entity.SubUser
	for rows.Next() {
		su, err := scanSubUser(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan sub-user")
		}
		subUsers = append(subUsers, su)
	}
	return subUsers, rows.Err()
}

func (r *subUserRepository) UpdatePermissions(ctx context.Context, id uuid.UUID, perms entity.SubUserPermissions) (*entity.SubUser, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE sub_users
		SET can_mark_attendance = $2, can_grant_od = $3, can_view_reports = $4
		WHERE id = $1
		RETURNING `+subUserColumns,
		id, perms.MarkAttendance, perms.GrantOD, perms.ViewReports,
	)
	su, err := scanSubUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sub-user %s: %w", id, common.ErrNotFound)
		}
		r.logger.Error("failed to update sub-user permissions", "id", id, "error", err)
		return nil, common.WrapError(err, "update sub-user")
	}
	return su, nil
}

func (r *subUserRepository) Remove(ctx context.Context, id uuid.UUID, eventID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sub_users WHERE id = $1 AND event_id = $2`, id, eventID)
	if err != nil {
		r.logger.Error("failed to remove sub-user", "id", id, "error", err)
		return common.WrapError(err, "remove sub-user")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sub-user %s: %w", id, common.ErrNotFound)
	}
	return nil
}
