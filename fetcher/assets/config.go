package assets

import (
	"fmt"
	"leaguehub/pkg/messages"
)

// LatestVersion is used when the version feed is empty.
const LatestVersion = "latest"

// Slot labels of the first four abilities.
var abilitySlots = []string{"Q", "W", "E", "R"}

// rawImage is the image reference of a DDragon record.
type rawImage struct {
	Full string `json:"full"`
}

// rawSpell is a DDragon spell or passive.
type rawSpell struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Tooltip      string   `json:"tooltip"`
	CooldownBurn string   `json:"cooldownBurn"`
	CostBurn     string   `json:"costBurn"`
	RangeBurn    string   `json:"rangeBurn"`
	Image        rawImage `json:"image"`
}

// rawChampion is a DDragon champion record, both from the list and the detail document.
type rawChampion struct {
	ID      string             `json:"id"`
	Key     string             `json:"key"`
	Name    string             `json:"name"`
	Title   string             `json:"title"`
	Blurb   string             `json:"blurb"`
	Lore    string             `json:"lore"`
	Partype string             `json:"partype"`
	Tags    []string           `json:"tags"`
	Image   rawImage           `json:"image"`
	Passive *rawSpell          `json:"passive"`
	Spells  []rawSpell         `json:"spells"`
	Stats   map[string]float64 `json:"stats"`
}

// championDocument is the shape of champion.json and champion/{id}.json.
type championDocument struct {
	Version string                 `json:"version"`
	Data    map[string]rawChampion `json:"data"`
}

// NotFoundError is returned when the catalog has no record for the champion.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.ChampionNotFoundMsg, e.ID)
}
