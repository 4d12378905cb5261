package champion

// Summary is the light champion record used by the catalog listing.
type Summary struct {
	ID               string   `json:"id"`
	DisplayName      string   `json:"name"`
	Title            string   `json:"title"`
	Tags             []string `json:"tags"`
	ShortDescription string   `json:"blurb"`
	IconURL          string   `json:"iconUrl"`
}

// Detail is the full champion record with passive, abilities and base stats.
type Detail struct {
	Version      string             `json:"version"`
	ID           string             `json:"id"`
	DisplayName  string             `json:"name"`
	Title        string             `json:"title"`
	Tags         []string           `json:"tags"`
	ResourceType string             `json:"partype"`
	Lore         string             `json:"lore"`
	IconURL      string             `json:"iconUrl"`
	Passive      Passive            `json:"passive"`
	Abilities    []Ability          `json:"spells"`
	BaseStats    map[string]float64 `json:"stats"`
}

// Listing is the full sorted catalog for a given version.
type Listing struct {
	Version   string    `json:"version"`
	Count     int       `json:"count"`
	Champions []Summary `json:"champions"`
}
