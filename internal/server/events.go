package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusmemory/campus-events/constants"
	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
	"github.com/campusmemory/campus-events/internal/utils"
)

type eventRequest struct {
	Title                string `json:"title"`
	Category             string `json:"category"`
	School               string `json:"school"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Organizer            string `json:"organizer"`
	RegistrationDeadline string `json:"registrationDeadline"`
	Description          string `json:"description"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
}

func (s *Server) createEvent(c echo.Context) error {
	coordinatorID := strings.TrimSpace(c.QueryParam("coordinator_id"))
	if coordinatorID == "" {
		return common.BadRequestError("coordinator_id is required")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid event payload")
	}
	if strings.TrimSpace(req.Title) == "" {
		return common.BadRequestError("title is required")
	}
	category, ok := constants.CanonicalizeCategory(req.Category)
	if !ok && req.Category != "" {
		return common.BadRequestErrorf("unknown category %q", req.Category)
	}
	school, ok := constants.CanonicalizeSchool(req.School)
	if !ok && req.School != "" {
		return common.BadRequestErrorf("unknown school %q", req.School)
	}

	ev := &entity.Event{
		Title:                req.Title,
		Category:             string(category),
		School:               string(school),
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Organizer:            req.Organizer,
		RegistrationDeadline: req.RegistrationDeadline,
		Description:          req.Description,
		Email:                req.Email,
		Phone:                req.Phone,
		CreatedBy:            coordinatorID,
	}

	created, err := s.events.Create(c.Request().Context(), ev)
	if err != nil {
		s.logger.Error("create event failed", "title", req.Title, "error", err)
		return common.StatusFor(err, "create event failed")
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) listEvents(c echo.Context) error {
	var filter entity.EventFilter

	if cat := strings.TrimSpace(c.QueryParam("category")); cat != "" {
		filter.Category = &cat
	}
	if school := strings.TrimSpace(c.QueryParam("school")); school != "" {
		filter.School = &school
	}
	if from := strings.TrimSpace(c.QueryParam("from_date")); from != "" {
		t, err := utils.ParseYMD(from)
		if err != nil {
			return common.BadRequestErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.FromDate = &t
	}
	if to := strings.TrimSpace(c.QueryParam("to_date")); to != "" {
		t, err := utils.ParseYMD(to)
		if err != nil {
			return common.BadRequestErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		filter.ToDate = &t
	}

	events, err := s.events.List(c.Request().Context(), filter)
	if err != nil {
		s.logger.Error("list events failed", "error", err)
		return common.StatusFor(err, "list events failed")
	}
	return c.JSON(http.StatusOK, events)
}

func (s *Server) getEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	ev, err := s.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.StatusFor(err, "get event failed")
	}
	return c.JSON(http.StatusOK, ev)
}

func (s *Server) updateEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	ev, err := s.events.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.StatusFor(err, "get event failed")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid event payload")
	}

	if req.Title != "" {
		ev.Title = req.Title
	}
	if req.Category != "" {
		category, ok := constants.CanonicalizeCategory(req.Category)
		if !ok {
			return common.BadRequestErrorf("unknown category %q", req.Category)
		}
		ev.Category = string(category)
	}
	if req.School != "" {
		school, ok := constants.CanonicalizeSchool(req.School)
		if !ok {
			return common.BadRequestErrorf("unknown school %q", req.School)
		}
		ev.School = string(school)
	}
	if req.Date != "" {
		ev.Date = req.Date
	}
	if req.Time != "" {
		ev.Time = req.Time
	}
	if req.Location != "" {
		ev.Location = req.Location
	}
	if req.Organizer != "" {
		ev.Organizer = req.Organizer
	}
	if req.RegistrationDeadline != "" {
		ev.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.Description != "" {
		ev.Description = req.Description
	}
	if req.Email != "" {
		ev.Email = req.Email
	}
	if req.Phone != "" {
		ev.Phone = req.Phone
	}
	// a human edited the form, the review flag has served its purpose
	ev.NeedsReview = false

	updated, err := s.events.Update(c.Request().Context(), ev)
	if err != nil {
		s.logger.Error("update event failed", "id", id, "error", err)
		return common.StatusFor(err, "update event failed")
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	if err := s.events.Delete(c.Request().Context(), id); err != nil {
		return common.StatusFor(err, "delete event failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}

func eventID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, common.BadRequestError("event id must be a UUID")
	}
	return id, nil
}
