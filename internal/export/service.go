package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campusmemory/campus-events/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// event reports.
type Service struct {
	eventsRepo     repository.EventRepository
	attendanceRepo repository.AttendanceRepository
	logger         *slog.Logger
}

func NewService(events repository.EventRepository, attendance repository.AttendanceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{eventsRepo: events, attendanceRepo: attendance, logger: logger}
}

// EventReportXLSX returns a workbook with an event summary sheet and an
// attendance sheet.
func (s *Service) EventReportXLSX(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	start := time.Now()

	ev, err := s.eventsRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event: %w", err)
	}
	records, err := s.attendanceRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("close workbook", "error", err)
		}
	}()

	const summarySheet = "Event"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Title", ev.Title},
		{"Category", ev.Category},
		{"School", ev.School},
		{"Date", ev.Date},
		{"Time", ev.Time},
		{"Location", ev.Location},
		{"Organizer", ev.Organizer},
		{"Registration Deadline", ev.RegistrationDeadline},
		{"Needs Review", ev.NeedsReview},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const attSheet = "Attendance"
	if _, err := f.NewSheet(attSheet); err != nil {
		return nil, err
	}
	header := []any{"Student ID", "Student Name", "Status", "Marked By", "Marked At", "OD Granted"}
	if err := f.SetSheetRow(attSheet, "A1", &header); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(attSheet, "A1", "F1", headerStyle)
	}

	for i, rec := range records {
		row := []any{
			rec.StudentID,
			rec.StudentName,
			string(rec.Status),
			rec.MarkedBy,
			rec.MarkedAt.UTC().Format(time.RFC3339),
			rec.ODGranted,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(attSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.report.ok",
		"event_id", eventID,
		"attendance_rows", len(records),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
