package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/constants"
	"github.com/kapu/pokedex-lookup-go/pkg/errors"
)

// CatalogRequester fetches the raw catalog document for one Pokémon.
type CatalogRequester interface {
	FetchPokemon(ctx context.Context, name string) ([]byte, error)
}

type CatalogClientConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Transport defaults to http.DefaultTransport. It is always wrapped with otelhttp.
	Transport http.RoundTripper
}

// CatalogAPIClient issues a single GET per call. It never retries; every
// failure goes back to the caller as-is.
type CatalogAPIClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

func NewCatalogAPIClient(cfg CatalogClientConfig, logger *zap.Logger) *CatalogAPIClient {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.APIConfig.CatalogTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.APIConfig.CatalogBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = constants.APIConfig.CatalogUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogAPIClient{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		logger:    logger,
	}
}

// PokemonURL returns <base>/<name>. The name is path-escaped and otherwise untouched.
func (c *CatalogAPIClient) PokemonURL(name string) string {
	return c.baseURL + "/" + url.PathEscape(name)
}

func (c *CatalogAPIClient) FetchPokemon(ctx context.Context, name string) ([]byte, error) {
	reqURL := c.PokemonURL(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// http.Client prefixes the method and URL; hand back the underlying cause
		var urlErr *url.Error
		if stderrors.As(err, &urlErr) && urlErr.Err != nil {
			return nil, urlErr.Err
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, int64(constants.APIConfig.MaxErrorBody)))
		c.logger.Debug("Catalog returned non-success status",
			zap.String("url", reqURL),
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.NewAPIError(statusMessage(resp.StatusCode), resp.StatusCode, map[string]any{
			"url":  reqURL,
			"body": string(snippet),
		})
	}

	return io.ReadAll(resp.Body)
}

func statusMessage(status int) string {
	switch {
	case status >= 500:
		return fmt.Sprintf("Server error: %d", status)
	case status >= 400:
		return fmt.Sprintf("Client error: %d", status)
	default:
		return fmt.Sprintf("Unexpected status: %d", status)
	}
}
