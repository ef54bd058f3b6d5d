package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/config"
	"github.com/kapu/pokedex-lookup-go/internal/server"
	"github.com/kapu/pokedex-lookup-go/internal/service"
)

// Container bundles assembled services for the server and CLI entry points.
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Catalog *service.CatalogAPIClient
	Pokemon *service.PokemonService
}

// NewServer builds the HTTP front end on top of the lookup service.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.Pokemon == nil {
		return nil, fmt.Errorf("pokemon service not initialized")
	}
	return server.New(server.Config{
		Addr:    c.Config.Server.Addr(),
		GinMode: c.Config.Server.GinMode,
	}, c.Pokemon, c.Logger)
}

func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	catalog := service.NewCatalogAPIClient(service.CatalogClientConfig{
		BaseURL:   cfg.Catalog.BaseURL,
		Timeout:   cfg.Catalog.Timeout,
		UserAgent: cfg.Catalog.UserAgent,
	}, logger.Named("catalog"))

	pokemonSvc := service.NewPokemonService(catalog, logger.Named("pokemon"))

	logger.Info("Catalog client configured",
		zap.String("base_url", cfg.Catalog.BaseURL),
		zap.Duration("timeout", cfg.Catalog.Timeout),
	)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Catalog: catalog,
		Pokemon: pokemonSvc,
	}, nil
}
