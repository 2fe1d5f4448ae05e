package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

type AttendanceRepository interface {
	Mark(ctx context.Context, records []*entity.AttendanceRecord) ([]*entity.AttendanceRecord, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.AttendanceRecord, error)
	GrantOD(ctx context.Context, recordID uuid.UUID, grantedBy string) (*entity.AttendanceRecord, error)
}

type attendanceRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAttendanceRepository(pool *pgxpool.Pool, logger *slog.Logger) AttendanceRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &attendanceRepository{pool: pool, logger: logger}
}

const attendanceColumns = `id, event_id, student_id, student_name, status, marked_by, marked_at,
	od_granted, od_granted_by, od_granted_at`

func scanAttendance(row pgx.Row) (*entity.AttendanceRecord, error) {
	var rec entity.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EventID, &rec.StudentID, &rec.StudentName, &rec.Status,
		&rec.MarkedBy, &rec.MarkedAt, &rec.ODGranted, &rec.ODGrantedBy, &rec.ODGrantedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Mark upserts one row per student; re-marking a student overwrites the
// earlier status rather than duplicating the record.
func (r *attendanceRepository) Mark(ctx context.Context, records []*entity.AttendanceRecord) ([]*entity.AttendanceRecord, error) {
	out := make([]*entity.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		row := r.pool.QueryRow(ctx, `
			INSERT INTO attendance (event_id, student_id, student_name, status, marked_by)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (event_id, student_id)
			DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, marked_at = now()
			RETURNING `+attendanceColumns,
			rec.EventID, rec.StudentID, rec.StudentName, rec.Status, rec.MarkedBy,
		)
		saved, err := scanAttendance(row)
		if err != nil {
			r.logger.Error("failed to mark attendance", "event_id", rec.EventID, "student_id", rec.StudentID, "error", err)
			return out, common.WrapError(err, "mark attendance")
		}
		out = append(out, saved)
	}
	return out, nil
}

func (r *attendanceRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendance WHERE event_id = $1 ORDER BY student_name`, eventID)
	if err != nil {
		r.logger.Error("failed to list attendance", "event_id", eventID, "error", err)
		return nil, common.WrapError(err, "list attendance")
	}
	defer rows.Close()

	var records []*entity.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, common.WrapError(err, "scan attendance")
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) GrantOD(ctx context.Context, recordID uuid.UUID, grantedBy string) (*entity.AttendanceRecord, error) {
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `
		UPDATE attendance
		SET od_granted = TRUE, od_granted_by = $2, od_granted_at = $3, status = $4
		WHERE id = $1
		RETURNING `+attendanceColumns,
		recordID, grantedBy, now, entity.AttendanceOD,
	)
	rec, err := scanAttendance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("attendance record %s: %w", recordID, common.ErrNotFound)
		}
		r.logger.Error("failed to grant od", "record_id", recordID, "error", err)
		return nil, common.WrapError(err, "grant od")
	}
	return rec, nil
}
