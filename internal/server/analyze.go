package server

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusmemory/campus-events/constants"
	"github.com/campusmemory/campus-events/internal/analysis"
	"github.com/campusmemory/campus-events/internal/common"
	"github.com/campusmemory/campus-events/internal/entity"
)

const analysisTimeoutError = "Poster analysis timed out. Please try again or fill the form manually."

// analyzePoster accepts a poster upload and returns the extraction result.
// Pipeline failures are a success=false payload, never a 5xx: the uploader
// always gets something actionable back.
func (s *Server) analyzePoster(c echo.Context) error {
	tmpPath, cleanup, err := s.receivePoster(c)
	if err != nil {
		return err
	}
	defer cleanup()

	result := s.runAnalysis(c.Request().Context(), tmpPath)
	return c.JSON(http.StatusOK, analyzeResponse{
		Result:  result,
		Message: analyzeMessage(result),
	})
}

type analyzeResponse struct {
	analysis.Result
	Message string `json:"message"`
}

func analyzeMessage(r analysis.Result) string {
	if !r.Success {
		return "Failed to analyze poster. Please fill manually."
	}
	return "Analysis complete. Please review and edit the extracted data before saving."
}

// createEventFromPoster analyzes the upload and immediately creates a
// pre-filled event owned by the coordinator.
func (s *Server) createEventFromPoster(c echo.Context) error {
	coordinatorID := strings.TrimSpace(c.FormValue("coordinator_id"))
	if coordinatorID == "" {
		return common.BadRequestError("coordinator_id is required")
	}

	tmpPath, cleanup, err := s.receivePoster(c)
	if err != nil {
		return err
	}
	defer cleanup()

	result := s.runAnalysis(c.Request().Context(), tmpPath)

	data := result.ExtractedData
	ev := &entity.Event{
		Title:                orDefault(data.Title, "Untitled Event"),
		Category:             orDefault(data.Category, string(constants.DefaultCategory())),
		School:               orDefault(data.School, string(constants.DefaultSchool())),
		Date:                 data.Date,
		Time:                 data.Time,
		Location:             data.Location,
		Organizer:            data.Organizer,
		RegistrationDeadline: data.RegistrationDeadline,
		Description:          data.Description,
		Email:                data.Email,
		Phone:                data.Phone,
		RawText:              result.RawText,
		NeedsReview:          result.NeedsReview || !result.Success,
		CreatedBy:            coordinatorID,
	}

	created, err := s.events.Create(c.Request().Context(), ev)
	if err != nil {
		s.logger.Error("create event from poster failed", "error", err)
		return common.InternalError("create event failed")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"eventId":     created.ID,
		"event":       created,
		"analysis":    result,
		"needsReview": ev.NeedsReview,
		"message":     "Event created from poster. Please review and edit if needed.",
	})
}

// runAnalysis applies the per-request wall-clock budget. A deadline breach
// is reported distinctly from the insufficient-text failure.
func (s *Server) runAnalysis(ctx context.Context, imagePath string) analysis.Result {
	ctx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()

	result := s.analyzer.Analyze(ctx, imagePath)
	if !result.Success && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.Error = analysisTimeoutError
	}
	return result
}

// receivePoster validates the multipart upload and spools it to a temp
// file. The caller must invoke cleanup.
func (s *Server) receivePoster(c echo.Context) (string, func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, common.BadRequestError("poster file is required")
	}
	if fh.Size > constants.MaxPosterBytes {
		return "", nil, common.BadRequestError("image size must be less than 10MB")
	}

	ext := filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !constants.IsAllowedExt(ext) {
		return "", nil, common.BadRequestError("file must be an image (JPEG/PNG)")
	}

	tmpPath, err := spoolUpload(fh, ext)
	if err != nil {
		s.logger.Error("spool upload failed", "filename", fh.Filename, "error", err)
		return "", nil, common.InternalError("could not store upload")
	}
	cleanup := func() {
		if err := os.Remove(tmpPath); err != nil {
			s.logger.Warn("remove temp upload failed", "path", tmpPath, "error", err)
		}
	}
	return tmpPath, cleanup, nil
}

func spoolUpload(fh *multipart.FileHeader, ext string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if ext == "" {
		ext = ".jpg"
	}
	tmp, err := os.CreateTemp("", "poster-*"+ext)
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
