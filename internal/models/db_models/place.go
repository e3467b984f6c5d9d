package db_models

import (
	"encoding/json"

	"github.com/lib/pq"

	"placedex/pkg/utils"
)

// Directory categories. A place row may carry a value outside this set;
// such rows only surface under the "all" sentinel and never match a
// specific category filter.
const (
	CategoryFood   = "food"
	CategoryDive   = "dive"
	CategoryPet    = "pet"
	CategoryTravel = "travel"

	CategoryAll = "all"
)

func KnownCategory(c string) bool {
	switch c {
	case CategoryFood, CategoryDive, CategoryPet, CategoryTravel:
		return true
	}
	return false
}

type Place struct {
	BaseModel
	Name        string
	Category    string `gorm:"index"`
	Subcategory string

	// Location arrives in one of two shapes: structured columns, or a WKT
	// "POINT(lon lat)" text left by older imports. Coordinate() resolves both.
	Latitude  *float64
	Longitude *float64
	Location  string

	Address string
	Rating  *float64
	MapURL  string

	Tags     pq.StringArray `gorm:"type:text[]"`
	Metadata Metadata       `gorm:"type:jsonb;serializer:json"`
}

// Coordinate normalizes the two location shapes into a single pair, or nil
// when neither is usable.
func (p *Place) Coordinate() *utils.LatLng {
	return utils.ResolveCoordinate(p.Latitude, p.Longitude, p.Location)
}

// FallbackText is the address-like line for the card: the stored address if
// present, otherwise the first non-empty description field, normalized.
func (p *Place) FallbackText() string {
	if p.Address != "" {
		return p.Address
	}
	for _, s := range []string{p.Metadata.Description, p.Metadata.OriginalDescription, p.Metadata.Notes} {
		if s != "" {
			return utils.NormalizeDisplayText(s)
		}
	}
	return ""
}

// Metadata is the open attribute bag attached to a place. Known fields are
// typed; anything else the store hands back survives JSON round-trips in
// Extra.
type Metadata struct {
	Description         string
	OriginalDescription string
	Notes               string
	Difficulty          string
	Extra               map[string]interface{}
}

func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Extra)+4)
	for k, v := range m.Extra {
		out[k] = v
	}
	if m.Description != "" {
		out["description"] = m.Description
	}
	if m.OriginalDescription != "" {
		out["original_description"] = m.OriginalDescription
	}
	if m.Notes != "" {
		out["notes"] = m.Notes
	}
	if m.Difficulty != "" {
		out["difficulty"] = m.Difficulty
	}
	return json.Marshal(out)
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Metadata{}
	for k, v := range raw {
		s, isString := v.(string)
		switch {
		case k == "description" && isString:
			m.Description = s
		case k == "original_description" && isString:
			m.OriginalDescription = s
		case k == "notes" && isString:
			m.Notes = s
		case k == "difficulty" && isString:
			m.Difficulty = s
		default:
			if m.Extra == nil {
				m.Extra = make(map[string]interface{})
			}
			m.Extra[k] = v
		}
	}
	return nil
}
