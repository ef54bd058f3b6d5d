package service

import (
	"context"
	"net/http"
	"sort"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kapu/pokedex-lookup-go/internal/domain"
	"github.com/kapu/pokedex-lookup-go/internal/util"
	"github.com/kapu/pokedex-lookup-go/pkg/errors"
)

// PokemonRaw is the subset of the catalog's pokemon document that the lookup reads.
type PokemonRaw struct {
	Name    string               `json:"name"`
	Height  *int                 `json:"height"` // decimeters
	Weight  *int                 `json:"weight"` // hectograms
	Sprites PokemonSpritesRaw    `json:"sprites"`
	Types   []PokemonTypeSlotRaw `json:"types"`
}

type PokemonSpritesRaw struct {
	Other struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

type PokemonTypeSlotRaw struct {
	Slot int `json:"slot"`
	Type struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"type"`
}

// missingField names the first required field absent from the document.
// The artwork URL is optional; the catalog has entries without one.
func (r *PokemonRaw) missingField() string {
	switch {
	case r.Name == "":
		return "name"
	case r.Height == nil:
		return "height"
	case r.Weight == nil:
		return "weight"
	case r.Types == nil:
		return "types"
	}
	return ""
}

// PokemonService looks up one Pokémon and converts it for display.
// It holds no per-call state and is safe for concurrent use.
type PokemonService struct {
	client CatalogRequester
	logger *zap.Logger
}

func NewPokemonService(client CatalogRequester, logger *zap.Logger) *PokemonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PokemonService{
		client: client,
		logger: logger,
	}
}

// Lookup fetches name from the catalog. Request and decode errors are returned
// unchanged; a nil record always comes with a non-nil error.
func (s *PokemonService) Lookup(ctx context.Context, name string) (*domain.Pokemon, error) {
	if name == "" {
		return nil, errors.NewValidationError("pokemon name is required", "name", name)
	}

	body, err := s.client.FetchPokemon(ctx, name)
	if err != nil {
		s.logger.Warn("Catalog lookup failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	var raw PokemonRaw
	if err := json.Unmarshal(body, &raw); err != nil {
		s.logger.Warn("Catalog response decode failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	if missing := raw.missingField(); missing != "" {
		s.logger.Warn("Catalog response incomplete", zap.String("name", name), zap.String("missing", missing))
		return nil, errors.NewAPIError("malformed catalog response", http.StatusBadGateway, map[string]any{
			"name":    name,
			"missing": missing,
		})
	}

	pokemon := s.mapPokemonResponse(&raw)
	s.logger.Debug("Catalog lookup succeeded",
		zap.String("name", name),
		zap.String("resolved", pokemon.Name),
		zap.Strings("types", pokemon.Types),
	)
	return pokemon, nil
}

func (s *PokemonService) mapPokemonResponse(raw *PokemonRaw) *domain.Pokemon {
	return &domain.Pokemon{
		Name:   raw.Name,
		Sprite: raw.Sprites.Other.OfficialArtwork.FrontDefault,
		Types:  typeNames(raw.Types),
		Height: util.FeetAndInches(*raw.Height),
		Weight: util.Pounds(*raw.Weight),
	}
}

func typeNames(slots []PokemonTypeSlotRaw) []string {
	ordered := make([]PokemonTypeSlotRaw, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Slot < ordered[j].Slot
	})

	names := make([]string, 0, len(ordered))
	for _, slot := range ordered {
		names = append(names, slot.Type.Name)
	}
	return names
}
