package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

type attendanceEntry struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	Status      string `json:"status"`
}

type markAttendanceRequest struct {
	MarkedBy string            `json:"markedBy"`
	Records  []attendanceEntry `json:"records"`
}

func (s *Server) markAttendance(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var req markAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid attendance payload")
	}
	if strings.TrimSpace(req.MarkedBy) == "" {
		return common.BadRequestError("markedBy is required")
	}
	if len(req.Records) == 0 {
		return common.BadRequestError("at least one attendance record is required")
	}

	// verify event exists before writing rows against it
	if _, err := s.events.GetByID(c.Request().Context(), id); err != nil {
		return common.StatusFor(err, "get event failed")
	}

	records := make([]*entity.AttendanceRecord, 0, len(req.Records))
	for _, r := range req.Records {
		status, err := parseAttendanceStatus(r.Status)
		if err != nil {
			return common.BadRequestError(err.Error())
		}
		if strings.TrimSpace(r.StudentID) == "" {
			return common.BadRequestError("studentId is required on every record")
		}
		records = append(records, &entity.AttendanceRecord{
			EventID:     id,
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			Status:      status,
			MarkedBy:    req.MarkedBy,
		})
	}

	saved, err := s.attendance.Mark(c.Request().Context(), records)
	if err != nil {
		s.logger.Error("mark attendance failed", "event_id", id, "error", err)
		return common.StatusFor(err, "mark attendance failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Marked attendance for %d students", len(saved)),
		"records": saved,
	})
}

func (s *Server) listAttendance(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	records, err := s.attendance.ListByEvent(c.Request().Context(), id)
	if err != nil {
		s.logger.Error("list attendance failed", "event_id", id, "error", err)
		return common.StatusFor(err, "list attendance failed")
	}
	return c.JSON(http.StatusOK, records)
}

type grantODRequest struct {
	GrantedBy string `json:"grantedBy"`
}

func (s *Server) grantOD(c echo.Context) error {
	recordID, err := uuid.Parse(c.Param("recordId"))
	if err != nil {
		return common.BadRequestError("attendance record id must be a UUID")
	}

	var req grantODRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid od payload")
	}
	if strings.TrimSpace(req.GrantedBy) == "" {
		return common.BadRequestError("grantedBy is required")
	}

	rec, err := s.attendance.GrantOD(c.Request().Context(), recordID, req.GrantedBy)
	if err != nil {
		s.logger.Error("grant od failed", "record_id", recordID, "error", err)
		return common.StatusFor(err, "grant od failed")
	}
	return c.JSON(http.StatusOK, rec)
}

type registrationRequest struct {
	StudentID   string   `json:"studentId"`
	StudentName string   `json:"studentName"`
	Email       string   `json:"email"`
	TeamName    string   `json:"teamName"`
	TeamMembers []string `json:"teamMembers"`
}

func (s *Server) createRegistration(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid registration payload")
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return common.BadRequestError("studentId is required")
	}

	if _, err := s.events.GetByID(c.Request().Context(), id); err != nil {
		return common.StatusFor(err, "get event failed")
	}

	reg := &entity.Registration{
		EventID:     id,
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Email:       req.Email,
		TeamMembers: req.TeamMembers,
	}
	if req.TeamName != "" {
		reg.TeamName = &req.TeamName
	}

	created, err := s.registrations.Create(c.Request().Context(), reg)
	if err != nil {
		s.logger.Error("create registration failed", "event_id", id, "error", err)
		return common.StatusFor(err, "create registration failed")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) listRegistrations(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	regs, err := s.registrations.ListByEvent(c.Request().Context(), id)
	if err != nil {
		s.logger.Error("list registrations failed", "event_id", id, "error", err)
		return common.StatusFor(err, "list registrations failed")
	}
	return c.JSON(http.StatusOK, regs)
}

func parseAttendanceStatus(s string) (entity.AttendanceStatus, error) {
	switch entity.AttendanceStatus(strings.ToLower(strings.TrimSpace(s))) {
	case entity.AttendancePresent:
		return entity.AttendancePresent, nil
	case entity.AttendanceAbsent:
		return entity.AttendanceAbsent, nil
	case entity.AttendanceOD:
		return entity.AttendanceOD, nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
}
