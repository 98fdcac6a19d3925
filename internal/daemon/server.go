package daemon

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"drivesync/internal/engine"
	"drivesync/internal/logger"
	"drivesync/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// SyncFunc runs one full pass over the manifest and returns its summary.
type SyncFunc func() engine.Summary

type Server struct {
	echo     *echo.Echo
	tracker  *Tracker
	histRepo *repository.HistoryRepository
	syncNow  SyncFunc
	port     int
}

func NewServer(tracker *Tracker, syncNow SyncFunc, port int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		tracker:  tracker,
		histRepo: repository.NewHistoryRepository(),
		syncNow:  syncNow,
		port:     port,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/status", s.handleStatus)
	s.echo.GET("/history", s.handleHistory)
	s.echo.POST("/sync", s.handleSync)
}

func (s *Server) Start() {
	go func() {
		addr := ":" + strconv.Itoa(s.port)
		logger.Log.Info("daemon server started",
			zap.String("addr", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("daemon server error", zap.Error(err))
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.tracker.Snapshot())
}

func (s *Server) handleHistory(c echo.Context) error {
	n := 20
	if param := c.QueryParam("n"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid n"})
		}
		n = parsed
	}

	histories, err := s.histRepo.GetRecent(n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, histories)
}

func (s *Server) handleSync(c echo.Context) error {
	sum := s.syncNow()
	return c.JSON(http.StatusOK, map[string]int{
		"synced":  sum.Synced,
		"skipped": sum.Skipped,
		"failed":  sum.Failed,
	})
}
