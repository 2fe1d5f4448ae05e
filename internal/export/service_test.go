package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

type stubEventRepo struct {
	event *entity.Event
}

func (s *stubEventRepo) Create(_ context.Context, ev *entity.Event) (*entity.Event, error) {
	return ev, nil
}

func (s *stubEventRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	if s.event == nil || s.event.ID != id {
		return nil, common.WrapError(common.ErrNotFound, "event")
	}
	return s.event, nil
}

func (s *stubEventRepo) List(_ context.Context, _ entity.EventFilter) ([]*entity.Event, error) {
	return nil, nil
}

func (s *stubEventRepo) Update(_ context.Context, ev *entity.Event) (*entity.Event, error) {
	return ev, nil
}

func (s *stubEventRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type stubAttendanceRepo struct {
	records []*entity.AttendanceRecord
}

func (s *stubAttendanceRepo) Mark(_ context.Context, r []*entity.AttendanceRecord) ([]*entity.AttendanceRecord, error) {
	return r, nil
}

func (s *stubAttendanceRepo) ListByEvent(_ context.Context, _ uuid.UUID) ([]*entity.AttendanceRecord, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) GrantOD(_ context.Context, _ uuid.UUID, _ string) (*entity.AttendanceRecord, error) {
	return nil, common.ErrNotFound
}

func TestEventReportXLSX(t *testing.T) {
	eventID := uuid.New()
	events := &stubEventRepo{event: &entity.Event{
		ID:       eventID,
		Title:    "TECH FEST",
		Category: "Technical",
		School:   "Amity School of Computer Science",
		Date:     "2026-03-15",
		Time:     "9:00 AM - 6:00 PM",
		Location: "Main Auditorium",
	}}
	attendance := &stubAttendanceRepo{records: []*entity.AttendanceRecord{
		{
			EventID:     eventID,
			StudentID:   "A123",
			StudentName: "Priya Sharma",
			Status:      entity.AttendancePresent,
			MarkedBy:    "coord-1",
			MarkedAt:    time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			EventID:     eventID,
			StudentID:   "A456",
			StudentName: "Rahul Verma",
			Status:      entity.AttendanceOD,
			MarkedBy:    "coord-1",
			MarkedAt:    time.Date(2026, 3, 15, 10, 5, 0, 0, time.UTC),
			ODGranted:   true,
		},
	}}

	svc := NewService(events, attendance, nil)
	raw, err := svc.EventReportXLSX(context.Background(), eventID)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Event", "B1")
	require.NoError(t, err)
	assert.Equal(t, "TECH FEST", title)

	student, err := f.GetCellValue("Attendance", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", student)

	status, err := f.GetCellValue("Attendance", "C3")
	require.NoError(t, err)
	assert.Equal(t, "od", status)
}

func TestEventReportXLSX_UnknownEvent(t *testing.T) {
	svc := NewService(&stubEventRepo{}, &stubAttendanceRepo{}, nil)
	_, err := svc.EventReportXLSX(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
