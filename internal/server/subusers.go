package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
	"github.com/campusmemory/campus-events/internal/utils"
)

type addSubUserRequest struct {
	Name        string                     `json:"name"`
	Role        string                     `json:"role"`
	Permissions *entity.SubUserPermissions `json:"permissions"`
}

func (s *Server) addSubUser(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var req addSubUserRequest
	if err := c.Bind(&req); err != nil {
		return common.BadRequestError("invalid sub-user payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return common.BadRequestError("name is required")
	}
	role, err := parseSubUserRole(req.Role)
	if err != nil {
		return common.BadRequestError(err.Error())
	}

	if _, err := s.events.GetByID(c.Request().Context(), id); err != nil {
		return common.StatusFor(err, "get event failed")
	}

	username, password, err := utils.GenerateCredentials(req.Name, string(role))
	if err != nil {
		s.logger.Error("generate credentials failed", "error", err)
		return common.InternalError("could not generate credentials")
	}

	perms := entity.SubUserPermissions{MarkAttendance: true}
	if req.Permissions != nil {
		perms = *req.Permissions
	}

	su := &entity.SubUser{
		EventID:      id,
		Name:         req.Name,
		Username:     username,
		Role:         role,
		Permissions:  perms,
		PasswordHash: utils.HashPassword(password),
	}

	created, err := s.subUsers.Add(c.Request().Context(), su)
	if err != nil {
		s.logger.Error("add sub-user failed", "event_id", id, "error", err)
		return common.StatusFor(err, "add sub-user failed")
	}

	// the clear-text password is shown exactly once, at creation
	return c.JSON(http.StatusCreated, map[string]any{
		"subUser":  created,
		"password": password,
		"message":  "Sub-user created. Share the credentials securely; the password is not shown again.",
	})
}

func (s *Server) listSubUsers(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}
	subUsers, err := s.subUsers.ListByEvent(c.Request().Context(), id)
	if err != nil {
		s.logger.Error("list sub-users failed", "event_id", id, "error", err)
		return common.StatusFor(err, "list sub-users failed")
	}
	return c.JSON(http.StatusOK, subUsers)
}

func (s *Server) updateSubUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("sub-user id must be a UUID")
	}

	var perms entity.SubUserPermissions
	if err := c.Bind(&perms); err != nil {
		return common.BadRequestError("invalid permissions payload")
	}

	su, err := s.subUsers.UpdatePermissions(c.Request().Context(), id, perms)
	if err != nil {
		s.logger.Error("update sub-user failed", "id", id, "error", err)
		return common.StatusFor(err, "update sub-user failed")
	}
	return c.JSON(http.StatusOK, su)
}

func (s *Server) removeSubUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.BadRequestError("sub-user id must be a UUID")
	}
	evID, err := uuid.Parse(c.QueryParam("event_id"))
	if err != nil {
		return common.BadRequestError("event_id query parameter must be a UUID")
	}

	if err := s.subUsers.Remove(c.Request().Context(), id, evID); err != nil {
		return common.StatusFor(err, "remove sub-user failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "sub-user removed"})
}

func parseSubUserRole(s string) (entity.SubUserRole, error) {
	switch entity.SubUserRole(strings.ToLower(strings.TrimSpace(s))) {
	case entity.RoleVolunteer, "":
		return entity.RoleVolunteer, nil
	case entity.RoleCoordinator:
		return entity.RoleCoordinator, nil
	default:
		return "", common.NewAppError("INVALID_ROLE", "role must be volunteer or co-coordinator", common.ErrInvalidInput)
	}
}
