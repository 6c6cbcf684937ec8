package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tartampluch/birthday-board/internal/config"
	"github.com/tartampluch/birthday-board/internal/engine"
	"github.com/tartampluch/birthday-board/internal/i18n"
	"github.com/tartampluch/birthday-board/internal/notify"
	"github.com/tartampluch/birthday-board/internal/roster"
	"github.com/tartampluch/birthday-board/internal/storage"
)

// BoardService produces rendered boards. Satisfied by *engine.Generator
// and by stubs in tests.
type BoardService interface {
	GenerateBoard(ctx context.Context, req engine.BoardRequest) (*engine.Board, error)
}

// RosterLoader acquires the employee roster for one request.
type RosterLoader interface {
	Load(ctx context.Context, src roster.Source) ([]roster.Employee, error)
}

// Server wires the HTTP trigger layer to the engine. The latest board
// and calendar feed are kept in lock-free caches: they are read often
// by clients and replaced only when a render completes.
type Server struct {
	cfg        *config.Config
	boards     BoardService
	loader     RosterLoader
	sink       storage.Sink
	notifier   notify.Notifier
	translator *i18n.Translator

	board boardCache
	feed  boardCache
}

// New assembles the server. Notifier may be nil when no webhook is
// configured.
func New(cfg *config.Config, boards BoardService, loader RosterLoader, sink storage.Sink,
	notifier notify.Notifier, translator *i18n.Translator) *Server {
	return &Server{
		cfg:        cfg,
		boards:     boards,
		loader:     loader,
		sink:       sink,
		notifier:   notifier,
		translator: translator,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET(config.RouteHealth, s.handleHealth)
	r.POST(config.RouteGenerate, s.handleGenerate)

	r.GET(config.RouteBoard, s.cachedHandler(&s.board, config.MimePNG))
	r.HEAD(config.RouteBoard, s.cachedHandler(&s.board, config.MimePNG))
	r.GET(config.RouteCalendar, s.cachedHandler(&s.feed, config.MimeTextCalendar))
	r.HEAD(config.RouteCalendar, s.cachedHandler(&s.feed, config.MimeTextCalendar))

	r.Static(config.RouteFiles, s.cfg.OutputDir)

	return r
}

// Start runs the HTTP server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	if s.cfg.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.BindAddr + config.AddrSeparator + s.cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.cfg.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{config.FieldStatus: config.StatusOK})
}

// handleGenerate runs the whole pipeline for one trigger: roster,
// render, store, cache update, notification. Error kinds map to
// distinct statuses: bad date input is the caller's fault, a missing
// asset is ours, and a sink failure is downstream of a successful
// render.
func (s *Server) handleGenerate(c *gin.Context) {
	ctx := c.Request.Context()

	day, month, err := referenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{config.FieldError: config.ErrInvalidDate})
		return
	}

	employees, err := s.loader.Load(ctx, roster.Source{
		Mode:  s.cfg.RosterMode,
		Value: s.cfg.RosterSource,
		User:  s.cfg.RosterUser,
		Pass:  s.cfg.RosterPass,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{config.FieldError: err.Error()})
		return
	}

	board, err := s.boards.GenerateBoard(ctx, engine.BoardRequest{
		Day:    day,
		Month:  month,
		Roster: employees,
		Photos: engine.PhotoConfig{
			BaseURL:     s.cfg.PhotoBaseURL,
			FallbackDir: s.cfg.PhotoDir,
		},
	})
	switch {
	case errors.Is(err, engine.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{config.FieldError: err.Error()})
		return
	case errors.Is(err, engine.ErrAsset):
		c.JSON(http.StatusInternalServerError, gin.H{config.FieldError: err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{config.FieldError: err.Error()})
		return
	}

	url, err := s.sink.Store(ctx, board.PNG)
	if err != nil {
		// The render itself succeeded; only publishing failed. Retry at
		// the sink layer, not by re-rendering.
		c.JSON(http.StatusBadGateway, gin.H{config.FieldError: err.Error()})
		return
	}

	s.board.update(board.PNG)
	slog.Debug(config.MsgBoardCached, config.LogKeyComponent, config.CompServer)

	// The window start carries the generator's clock, so the feed's
	// year and stamp stay deterministic under a mocked clock.
	if feed, err := engine.BuildCalendar(board.Window.Start, employees); err == nil {
		s.feed.update(feed)
		slog.Debug(config.MsgFeedCached, config.LogKeyComponent, config.CompServer)
	}

	if s.translator != nil {
		notify.Dispatch(s.notifier, s.translator.WeeklySummary(board.Celebrants, url))
	}

	skipped := make([]string, 0, len(board.Skipped))
	for _, sk := range board.Skipped {
		skipped = append(skipped, sk.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		config.FieldStart:      board.Window.Start.Format(config.DateFormatResponse),
		config.FieldEnd:        board.Window.End().Format(config.DateFormatResponse),
		config.FieldCelebrants: board.Celebrants,
		config.FieldURL:        url,
		config.FieldSkipped:    skipped,
	})
}

// generateRequest is the optional JSON trigger body.
type generateRequest struct {
	Day   int `json:"day"`
	Month int `json:"month"`
}

// referenceDate reads the optional day/month override, preferring query
// parameters and falling back to a JSON body. Absent means 0.
func referenceDate(c *gin.Context) (day, month int, err error) {
	day, dayErr := queryInt(c, config.QueryDay)
	month, monthErr := queryInt(c, config.QueryMonth)
	if dayErr != nil || monthErr != nil {
		return 0, 0, errors.New(config.ErrInvalidDate)
	}

	if day == 0 && month == 0 && c.Request.ContentLength > 0 {
		var body generateRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			return 0, 0, err
		}
		day, month = body.Day, body.Month
	}
	return day, month, nil
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
