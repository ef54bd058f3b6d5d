package adapter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kapu/pokedex-lookup-go/internal/domain"
)

const (
	PageIndex    = "index.tmpl"
	PagePokemon  = "pokemon.tmpl"
	PageNotFound = "not_found.tmpl"
)

// PokemonView is the template model for the info page.
type PokemonView struct {
	Name        string
	Title       string
	Sprite      string
	Types       []string
	PrimaryType string
	Height      string
	Weight      string
}

// NotFoundView is rendered when a lookup fails for any reason.
type NotFoundView struct {
	Query string
}

var titleCaser = cases.Title(language.English)

func NewPokemonView(p *domain.Pokemon) *PokemonView {
	if p == nil {
		return nil
	}
	return &PokemonView{
		Name:        p.Name,
		Title:       FormatTitle(p.Name),
		Sprite:      p.Sprite,
		Types:       p.Types,
		PrimaryType: p.PrimaryType(),
		Height:      p.Height,
		Weight:      p.Weight,
	}
}

// FormatTitle turns a catalog slug like "mr-mime" into "Mr-Mime".
func FormatTitle(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}
