package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/campusmemory/campus-events/internal/common"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) eventReport(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	workbook, err := s.export.EventReportXLSX(c.Request().Context(), id)
	if err != nil {
		s.logger.Error("event report failed", "event_id", id, "error", err)
		return common.StatusFor(err, "export report failed")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="event-%s.xlsx"`, id))
	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}

// eventQR returns a PNG code encoding the event's check-in URL, scanned by
// volunteers to open the attendance form.
func (s *Server) eventQR(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	if _, err := s.events.GetByID(c.Request().Context(), id); err != nil {
		return common.StatusFor(err, "get event failed")
	}

	checkinURL := fmt.Sprintf("campus-events://checkin/%s", id)
	png, err := qrcode.Encode(checkinURL, qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("qr encode failed", "event_id", id, "error", err)
		return common.InternalError("qr generation failed")
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
