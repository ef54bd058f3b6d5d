package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Catalog: config.CatalogConfig{BaseURL: baseURL, Timeout: time.Second, UserAgent: "test"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 3000, GinMode: gin.TestMode},
	}
}

func TestBuildRejectsMissingInputs(t *testing.T) {
	_, err := Build(nil, zap.NewNop())
	assert.Error(t, err)

	_, err = Build(testConfig("https://pokeapi.co/api/v2/pokemon"), nil)
	assert.Error(t, err)
}

func TestBuildWiresLookupEndToEnd(t *testing.T) {
	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/pokemon/ditto" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"name":"ditto","height":3,"weight":40,"types":[{"slot":1,"type":{"name":"normal"}}],
		  "sprites":{"other":{"official-artwork":{"front_default":"https://example.test/132.png"}}}}`))
	}))
	defer catalog.Close()

	container, err := Build(testConfig(catalog.URL+"/api/v2/pokemon"), zap.NewNop())
	require.NoError(t, err)

	pokemon, err := container.Pokemon.Lookup(context.Background(), "ditto")
	require.NoError(t, err)
	assert.Equal(t, "ditto", pokemon.Name)
	assert.Equal(t, "1 feet 0 inches", pokemon.Height)
	assert.Equal(t, "9 pounds", pokemon.Weight)

	srv, err := container.NewServer()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3000", srv.HTTPServer().Addr)

	req := httptest.NewRequest(http.MethodGet, "/pokemon?name=missingno", nil)
	resp := httptest.NewRecorder()
	srv.Handler().ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Pokemon not found")
}
