// Package server exposes the layout engine over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkoppen/ceilgrid/internal/config"
	"github.com/mkoppen/ceilgrid/internal/engine"
	"github.com/mkoppen/ceilgrid/internal/estimate"
	"github.com/mkoppen/ceilgrid/internal/model"
)

// Server wires the layout engine behind a JSON API. Each request builds
// its own engine instance, so concurrent requests share no state.
type Server struct {
	cfg    config.Config
	logger *charmlog.Logger
	router *gin.Engine
}

func New(cfg config.Config, logger *charmlog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		logger: logger,
		router: gin.New(),
	}

	s.router.Use(gin.Recovery(), s.requestLog())

	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api")
	{
		api.POST("/layout", s.handleLayout)
		api.POST("/estimate", s.handleEstimate)
	}

	return s
}

// Router returns the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on the configured listen address.
func (s *Server) Run() error {
	s.logger.Infof("Listening on %s", s.cfg.ListenAddr)
	return s.router.Run(s.cfg.ListenAddr)
}

// requestLog tags every request with an id and logs its outcome.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()[:8]
		c.Set("request_id", id)
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	}
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// layoutRequest is the JSON body for /api/layout. Spacing, ratio, strategy
// and algorithm fall back to the configured defaults when omitted.
type layoutRequest struct {
	LengthMM          float64  `json:"length_mm"`
	WidthMM           float64  `json:"width_mm"`
	PerimeterGapMM    *float64 `json:"perimeter_gap_mm"`
	PanelGapMM        *float64 `json:"panel_gap_mm"`
	TargetAspectRatio *float64 `json:"target_aspect_ratio"`
	Strategy          string   `json:"strategy"`
	Algorithm         string   `json:"algorithm"`
	Seed              int64    `json:"seed"`
	Alternates        int      `json:"alternates"`
}

func (r layoutRequest) ceiling() model.CeilingDimensions {
	return model.CeilingDimensions{LengthMM: r.LengthMM, WidthMM: r.WidthMM}
}

func (r layoutRequest) spacing(cfg config.Config) model.PanelSpacing {
	spacing := model.PanelSpacing{
		PerimeterGapMM: cfg.PerimeterGapMM,
		PanelGapMM:     cfg.PanelGapMM,
	}
	if r.PerimeterGapMM != nil {
		spacing.PerimeterGapMM = *r.PerimeterGapMM
	}
	if r.PanelGapMM != nil {
		spacing.PanelGapMM = *r.PanelGapMM
	}
	return spacing
}

func (r layoutRequest) settings(cfg config.Config) model.SearchSettings {
	settings := cfg.Settings()
	if r.TargetAspectRatio != nil {
		settings.TargetAspectRatio = *r.TargetAspectRatio
	}
	if r.Strategy != "" {
		settings.Strategy = model.ParseStrategy(r.Strategy)
	}
	if r.Algorithm != "" {
		settings.Algorithm = model.Algorithm(r.Algorithm)
	}
	if r.Seed != 0 {
		settings.Genetic.Seed = r.Seed
	}
	return settings
}

type layoutResponse struct {
	RequestID  string                `json:"request_id"`
	Layout     model.PanelLayout     `json:"layout"`
	Score      float64               `json:"score"`
	Alternates []engine.ScoredLayout `json:"alternates,omitempty"`
}

func (s *Server) handleLayout(c *gin.Context) {
	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eng := engine.New(req.settings(s.cfg))
	layout, err := eng.Compute(req.ceiling(), req.spacing(s.cfg))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	resp := layoutResponse{
		RequestID: requestID(c),
		Layout:    layout,
	}
	if ranked := eng.Alternates(1); len(ranked) > 0 {
		resp.Score = ranked[0].Score
	}
	if req.Alternates > 0 {
		resp.Alternates = eng.Alternates(req.Alternates)
	}

	c.JSON(http.StatusOK, resp)
}

// estimateRequest extends layoutRequest with purchasing inputs.
type estimateRequest struct {
	layoutRequest
	SparePercent  float64 `json:"spare_percent"`
	PricePerPanel float64 `json:"price_per_panel"`
}

type estimateResponse struct {
	RequestID string                    `json:"request_id"`
	Layout    model.PanelLayout         `json:"layout"`
	Estimate  estimate.PurchaseEstimate `json:"estimate"`
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eng := engine.New(req.settings(s.cfg))
	layout, err := eng.Compute(req.ceiling(), req.spacing(s.cfg))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, estimateResponse{
		RequestID: requestID(c),
		Layout:    layout,
		Estimate:  estimate.CalculatePurchase(layout, req.SparePercent, req.PricePerPanel),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFor maps engine errors onto HTTP statuses: malformed inputs are
// 400s, a well-formed request with no buildable layout is a 422.
func statusFor(err error) int {
	var noLayout *engine.NoValidLayoutError
	if errors.As(err, &noLayout) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
