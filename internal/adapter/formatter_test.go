package adapter

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapu/pokedex-lookup-go/internal/domain"
)

func renderPage(t *testing.T, name string, data any) (string, error) {
	t.Helper()
	tmpl, err := PageTemplates()
	require.NoError(t, err)

	var builder strings.Builder
	if err := tmpl.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "Gengar", FormatTitle("gengar"))
	assert.Equal(t, "Mr-Mime", FormatTitle("mr-mime"))
	assert.Equal(t, "", FormatTitle("  "))
}

func TestNewPokemonView(t *testing.T) {
	view := NewPokemonView(&domain.Pokemon{
		Name:   "gengar",
		Sprite: "https://example.test/94.png",
		Types:  []string{"ghost", "poison"},
		Height: "4 feet 11 inches",
		Weight: "89 pounds",
	})

	require.NotNil(t, view)
	assert.Equal(t, "Gengar", view.Title)
	assert.Equal(t, "ghost", view.PrimaryType)
	assert.Nil(t, NewPokemonView(nil))
}

func TestRenderPokemonPage(t *testing.T) {
	html, err := renderPage(t, PagePokemon, NewPokemonView(&domain.Pokemon{
		Name:   "gengar",
		Sprite: "https://example.test/94.png",
		Types:  []string{"ghost", "poison"},
		Height: "4 feet 11 inches",
		Weight: "89 pounds",
	}))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "gengar", doc.Find(`[data-test-id="pokemon-name"]`).Text())
	src, _ := doc.Find("img").Attr("src")
	assert.Equal(t, "https://example.test/94.png", src)
	assert.Contains(t, doc.Find("p").First().Text(), "ghost, poison")
	assert.Contains(t, doc.Find(`[data-test-id="height"]`).Text(), "4 feet 11 inches")
	assert.Contains(t, doc.Find(`[data-test-id="weight"]`).Text(), "89 pounds")
}

func TestRenderIndexPage(t *testing.T) {
	html, err := renderPage(t, PageIndex, nil)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	action, _ := doc.Find("form").Attr("action")
	assert.Equal(t, "/pokemon", action)
	assert.Equal(t, 1, doc.Find(`[name="name"]`).Length())
}

func TestRenderNotFoundEscapesQuery(t *testing.T) {
	html, err := renderPage(t, PageNotFound, NotFoundView{Query: "<script>"})
	require.NoError(t, err)

	assert.Contains(t, html, "Pokemon not found")
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownPage(t *testing.T) {
	_, err := renderPage(t, "missing.tmpl", nil)
	assert.Error(t, err)
}
