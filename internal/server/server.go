package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guiyumin/vlink/internal/core/config"
	"github.com/guiyumin/vlink/internal/core/extractor"
	"github.com/guiyumin/vlink/internal/core/i18n"
	"github.com/guiyumin/vlink/internal/core/notify"
	"github.com/guiyumin/vlink/internal/core/telemetry"
	"github.com/guiyumin/vlink/internal/core/textutil"
	"github.com/guiyumin/vlink/internal/core/version"
)

// Extraction sources accepted by POST /api/extract
const (
	SourceClipboard = "clipboard"
	SourceShare     = "share"
)

// Response is the standard API response structure
type Response struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ClassifyRequest is the request body for POST /api/classify
type ClassifyRequest struct {
	URL string `json:"url" binding:"required"`
}

// ExtractRequest is the request body for POST /api/extract
type ExtractRequest struct {
	Text   string `json:"text"`
	Multi  *bool  `json:"multi,omitempty"`
	Source string `json:"source,omitempty"`
	Lang   string `json:"lang,omitempty"`
}

// FormatRequest is the request body for POST /api/format.
// Missing fields render as their "unknown" form.
type FormatRequest struct {
	Size     *float64 `json:"size,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Bitrate  *float64 `json:"bitrate,omitempty"`
	Lang     string   `json:"lang,omitempty"`
}

// LoginRequiredRequest is the request body for POST /api/login-required
type LoginRequiredRequest struct {
	Message string `json:"message"`
}

// Server is the HTTP server for vlink
type Server struct {
	port    int
	apiKey  string
	cfg     *config.Config
	server  *http.Server
	engine  *gin.Engine
	metrics *telemetry.Provider
}

// NewServer creates a new HTTP server from cfg
func NewServer(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	port := cfg.Server.Port
	if port <= 0 {
		port = config.DefaultServerPort
	}

	s := &Server{
		port:    port,
		apiKey:  cfg.Server.APIKey,
		cfg:     cfg,
		metrics: telemetry.Default(),
	}
	s.engine = s.setupEngine()
	return s
}

// Handler returns the configured gin engine
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) setupEngine() *gin.Engine {
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(s.loggingMiddleware())
	if s.apiKey != "" {
		engine.Use(s.authMiddleware())
	}

	api := engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/classify", s.handleClassify)
	api.POST("/extract", s.handleExtract)
	api.POST("/format", s.handleFormat)
	api.POST("/login-required", s.handleLoginRequired)
	api.GET("/i18n", s.handleI18n)

	engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{
			Code:    404,
			Data:    nil,
			Message: "not found",
		})
	})

	return engine
}

// Start starts the HTTP server
func (s *Server) Start() error {
	if !config.Exists() {
		t := i18n.GetTranslations(s.lang())
		log.Printf("⚠️  %s", t.Server.NoConfigWarning)
		log.Printf("   %s", t.Server.RunInitHint)
	}

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting vlink server on port %d", s.port)
	if s.apiKey != "" {
		log.Printf("API key authentication enabled")
	}

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) lang() string {
	if s.cfg.Language == "" {
		return i18n.DefaultLanguage()
	}
	return s.cfg.Language
}

func (s *Server) requestLang(lang string) string {
	if lang == "" {
		return s.lang()
	}
	return lang
}

// Middleware

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		// Health endpoint doesn't require auth
		if path == "/api/health" || !strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}

		if c.GetHeader("X-API-Key") != s.apiKey {
			c.JSON(http.StatusUnauthorized, Response{
				Code:    401,
				Data:    nil,
				Message: "invalid or missing API key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)
		log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(route, elapsed)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    400,
		Data:    nil,
		Message: msg,
	})
}

// Handlers

func (s *Server) handleHealth(c *gin.Context) {
	var providers []string
	for _, p := range extractor.List() {
		providers = append(providers, p.Name())
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"status":    "ok",
			"version":   version.Version,
			"providers": providers,
		},
		Message: "everything is good",
	})
}

func (s *Server) classify(rawURL string) extractor.Classification {
	result := extractor.Classify(rawURL)
	s.metrics.RecordClassification(result.Provider, string(result.ContentType))
	return result
}

func (s *Server) handleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request: url is required")
		return
	}

	result := s.classify(req.URL)

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"url":          req.URL,
			"provider":     result.Provider,
			"content_type": result.ContentType,
			"instagram":    extractor.IsInstagramURL(req.URL),
			"reel":         extractor.IsInstagramReelURL(req.URL),
			"post":         extractor.IsInstagramPostURL(req.URL),
			"story":        extractor.IsInstagramStoryURL(req.URL),
		},
		Message: "classified",
	})
}

func (s *Server) handleExtract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	source := req.Source
	if source == "" {
		source = SourceClipboard
	}
	multi := s.cfg.MultiLink
	if req.Multi != nil {
		multi = *req.Multi
	}

	var toasts notify.Recorder
	d := extractor.NewDispatcher(&toasts, s.requestLang(req.Lang))

	var result string
	switch source {
	case SourceClipboard:
		result = d.FromClipboard(req.Text, multi)
	case SourceShare:
		result = d.FromSharedText(req.Text)
	default:
		badRequest(c, fmt.Sprintf("unknown source: %s", source))
		return
	}
	s.metrics.RecordExtraction(source, result != "")

	urls := []string{}
	classifications := []extractor.Classification{}
	if result != "" {
		urls = strings.Split(result, "\n")
		for _, u := range urls {
			classifications = append(classifications, s.classify(u))
		}
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"urls":            urls,
			"classifications": classifications,
			"toasts":          toasts.Messages(),
		},
		Message: fmt.Sprintf("%d url(s) found", len(urls)),
	})
}

func (s *Server) handleFormat(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	duration := ""
	if req.Duration != nil {
		duration = textutil.DurationText(*req.Duration)
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"size":     textutil.FileSizeText(s.requestLang(req.Lang), req.Size),
			"duration": duration,
			"bitrate":  textutil.BitrateText(req.Bitrate),
		},
		Message: "formatted",
	})
}

func (s *Server) handleLoginRequired(c *gin.Context) {
	var req LoginRequiredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"login_required": textutil.IsLoginRequired(req.Message),
		},
		Message: "checked",
	})
}

func (s *Server) handleI18n(c *gin.Context) {
	lang := s.lang()
	t := i18n.GetTranslations(lang)

	c.JSON(http.StatusOK, Response{
		Code: 200,
		Data: gin.H{
			"language":      lang,
			"toast":         t.Toast,
			"format":        t.Format,
			"server":        t.Server,
			"config_exists": config.Exists(),
		},
		Message: "translations retrieved",
	})
}
