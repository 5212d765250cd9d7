// Package server exposes the reasoning extractor over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	reasonify "github.com/riverfjs/reasonify-go"
	"github.com/riverfjs/reasonify-go/internal/metrics"
)

// Output formats accepted by the render endpoint.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Config configures the HTTP server.
type Config struct {
	Addr            string
	Port            int
	ShutdownTimeout time.Duration
	// BodyLimit is an echo size string such as "4M".
	BodyLimit string
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:            28090,
		ShutdownTimeout: 10 * time.Second,
		BodyLimit:       "4M",
	}
}

// Address returns host:port to listen on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Addr, c.Port)
}

// RenderRequest is the body of POST /api/v1/render.
type RenderRequest struct {
	Text      string `json:"text"`
	Format    string `json:"format,omitempty"`
	KeepEmpty bool   `json:"keep_empty,omitempty"`
}

// RenderResponse is returned by POST /api/v1/render.
type RenderResponse struct {
	reasonify.Document
	Format string `json:"format"`
}

// StripRequest is the body of POST /api/v1/strip.
type StripRequest struct {
	Text  string   `json:"text"`
	Types []string `json:"types"`
}

// StripResponse is returned by POST /api/v1/strip.
type StripResponse struct {
	Text string `json:"text"`
}

// Server wraps an echo instance serving the API.
type Server struct {
	config   *Config
	echo     *echo.Echo
	exporter *metrics.Exporter
	logger   *slog.Logger
	options  []reasonify.Option
}

// New creates a Server. Extra options are passed to every Process call.
func New(config *Config, exporter *metrics.Exporter, logger *slog.Logger, opts ...reasonify.Option) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if exporter == nil {
		exporter = metrics.NewExporter(metrics.DefaultConfig())
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		config:   config,
		echo:     e,
		exporter: exporter,
		logger:   logger,
		options:  opts,
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.BodyLimit(config.BodyLimit))

	e.GET("/healthz", s.handleHealth)
	e.GET("/metrics", echo.WrapHandler(exporter))

	api := e.Group("/api/v1")
	api.GET("/tags", s.handleTags)
	api.POST("/render", s.handleRender)
	api.POST("/strip", s.handleStrip)

	return s
}

// Handler returns the underlying http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address. It blocks until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.config.Address())
	return s.echo.Start(s.config.Address())
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleTags(c echo.Context) error {
	return c.JSON(http.StatusOK, reasonify.DefaultMarkerPairs())
}

func (s *Server) handleRender(c echo.Context) (err error) {
	started := time.Now()
	defer func() {
		s.exporter.RecordDocument("render", time.Since(started), err == nil)
	}()

	var req RenderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	format := req.Format
	if format == "" {
		format = FormatMarkdown
	}
	if format != FormatMarkdown && format != FormatHTML {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
	}

	opts := append([]reasonify.Option{}, s.options...)
	opts = append(opts, reasonify.WithKeepEmpty(req.KeepEmpty))
	doc, err := reasonify.Process(req.Text, opts...)
	if err != nil {
		if errors.Is(err, reasonify.ErrInvalidSpanSet) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error()).SetInternal(err)
		}
		s.logger.Error("failed to process document", "request_id", requestID(c), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process document").SetInternal(err)
	}

	if format == FormatHTML {
		html, err := reasonify.ToHTML(doc.Text)
		if err != nil {
			s.logger.Error("failed to render html", "request_id", requestID(c), "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to render html").SetInternal(err)
		}
		doc.Text = html
	}

	for _, b := range doc.Blocks {
		s.exporter.RecordBlock(b.StartTag, b.Duration)
	}
	return c.JSON(http.StatusOK, RenderResponse{Document: *doc, Format: format})
}

func (s *Server) handleStrip(c echo.Context) (err error) {
	started := time.Now()
	defer func() {
		s.exporter.RecordDocument("strip", time.Since(started), err == nil)
	}()

	var req StripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	if len(req.Types) == 0 {
		req.Types = []string{reasonify.BlockTypeReasoning}
	}
	return c.JSON(http.StatusOK, StripResponse{Text: reasonify.StripDetails(req.Text, req.Types...)})
}

func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
