package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/campusmemory/campus-events/constants"
	"github.com/campusmemory/campus-events/internal/analysis"
	"github.com/campusmemory/campus-events/internal/export"
	"github.com/campusmemory/campus-events/internal/repository"
)

// PosterAnalyzer is what the upload boundary needs from the analysis
// pipeline.
type PosterAnalyzer interface {
	Analyze(ctx context.Context, imagePath string) analysis.Result
}

// Server wires the poster pipeline and repositories behind the HTTP API.
type Server struct {
	echo            *echo.Echo
	analyzer        PosterAnalyzer
	events          repository.EventRepository
	attendance      repository.AttendanceRepository
	registrations   repository.RegistrationRepository
	subUsers        repository.SubUserRepository
	export          *export.Service
	analysisTimeout time.Duration
	logger          *slog.Logger
}

type Deps struct {
	Analyzer        PosterAnalyzer
	Events          repository.EventRepository
	Attendance      repository.AttendanceRepository
	Registrations   repository.RegistrationRepository
	SubUsers        repository.SubUserRepository
	Export          *export.Service
	AnalysisTimeout time.Duration
}

func New(deps Deps, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if deps.AnalysisTimeout <= 0 {
		deps.AnalysisTimeout = 60 * time.Second
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("12M")) // poster cap plus multipart overhead

	s := &Server{
		echo:            e,
		analyzer:        deps.Analyzer,
		events:          deps.Events,
		attendance:      deps.Attendance,
		registrations:   deps.Registrations,
		subUsers:        deps.SubUsers,
		export:          deps.Export,
		analysisTimeout: deps.AnalysisTimeout,
		logger:          logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo

	e.GET("/health", s.health)
	e.GET("/categories", s.listCategories)
	e.GET("/schools", s.listSchools)

	e.POST("/analyze/poster", s.analyzePoster)
	e.POST("/events/from-poster", s.createEventFromPoster)

	e.POST("/events", s.createEvent)
	e.GET("/events", s.listEvents)
	e.GET("/events/:id", s.getEvent)
	e.PUT("/events/:id", s.updateEvent)
	e.DELETE("/events/:id", s.deleteEvent)

	e.POST("/events/:id/attendance", s.markAttendance)
	e.GET("/events/:id/attendance", s.listAttendance)
	e.POST("/attendance/:recordId/od", s.grantOD)

	e.POST("/events/:id/registrations", s.createRegistration)
	e.GET("/events/:id/registrations", s.listRegistrations)

	e.POST("/events/:id/subusers", s.addSubUser)
	e.GET("/events/:id/subusers", s.listSubUsers)
	e.PUT("/subusers/:id", s.updateSubUser)
	e.DELETE("/subusers/:id", s.removeSubUser)

	e.GET("/events/:id/report.xlsx", s.eventReport)
	e.GET("/events/:id/qr", s.eventQR)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"categories": constants.Categories()})
}

func (s *Server) listSchools(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"schools": constants.Schools()})
}
