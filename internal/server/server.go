package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/adapter"
	"github.com/kapu/pokedex-lookup-go/internal/constants"
	"github.com/kapu/pokedex-lookup-go/internal/domain"
	"github.com/kapu/pokedex-lookup-go/pkg/errors"
)

// PokemonLookup is the lookup the pages render. Any error means "not found" to the visitor.
type PokemonLookup interface {
	Lookup(ctx context.Context, name string) (*domain.Pokemon, error)
}

type Config struct {
	Addr    string
	GinMode string
}

type Server struct {
	engine *gin.Engine
	lookup PokemonLookup
	logger *zap.Logger
	addr   string
}

func New(cfg Config, lookup PokemonLookup, logger *zap.Logger) (*Server, error) {
	if lookup == nil {
		return nil, fmt.Errorf("pokemon lookup must not be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	tmpl, err := adapter.PageTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.SetHTMLTemplate(tmpl)

	s := &Server{
		engine: engine,
		lookup: lookup,
		logger: logger,
		addr:   cfg.Addr,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/pokemon", s.handlePokemon)
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: constants.ServerConfig.ReadHeaderTimeout,
		ReadTimeout:       constants.ServerConfig.ReadTimeout,
		WriteTimeout:      constants.ServerConfig.WriteTimeout,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, adapter.PageIndex, nil)
}

func (s *Server) handlePokemon(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	pokemon, err := s.lookup.Lookup(c.Request.Context(), name)
	if err != nil {
		s.logger.Warn("Pokemon lookup failed",
			zap.String("name", name),
			zap.Bool("not_found", errors.IsNotFound(err)),
			zap.Error(err),
		)
		c.HTML(http.StatusOK, adapter.PageNotFound, adapter.NotFoundView{Query: name})
		return
	}

	c.HTML(http.StatusOK, adapter.PagePokemon, adapter.NewPokemonView(pokemon))
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
