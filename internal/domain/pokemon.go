package domain

// Pokemon is the display-ready record produced by one catalog lookup.
// Height and Weight are already converted to imperial units.
type Pokemon struct {
	Name   string   `json:"name"`
	Sprite string   `json:"sprite"`
	Types  []string `json:"types"`
	Height string   `json:"height"`
	Weight string   `json:"weight"`
}

// PrimaryType returns the first type in catalog slot order, or "" when none are present.
func (p *Pokemon) PrimaryType() string {
	if p == nil || len(p.Types) == 0 {
		return ""
	}
	return p.Types[0]
}
