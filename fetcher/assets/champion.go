package assets

import (
	"context"
	"leaguehub/fetcher/requests"
	"leaguehub/pkg/models/champion"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GetChampionSummaries gets the catalog of a version, sorted by display name on the data locale.
func (a *Assets) GetChampionSummaries(ctx context.Context, version string) ([]champion.Summary, error) {
	var document championDocument
	if err := a.client.Get(ctx, a.championListURL(version), &document); err != nil {
		return nil, err
	}

	summaries := make([]champion.Summary, 0, len(document.Data))
	for _, raw := range document.Data {
		summaries = append(summaries, a.mapToSummary(version, raw))
	}

	a.sortSummaries(summaries)
	return summaries, nil
}

// GetChampionDetail gets the full record of a champion.
// A missing record, or the CDN refusing the document, results in a NotFoundError.
func (a *Assets) GetChampionDetail(ctx context.Context, version string, championId string) (*champion.Detail, error) {
	var document championDocument
	err := a.client.Get(ctx, a.championDetailURL(version, championId), &document)
	if err != nil {
		// The CDN answers 403 for unknown documents.
		if requests.IsStatus(err, http.StatusNotFound, http.StatusForbidden) {
			return nil, &NotFoundError{ID: championId}
		}
		return nil, err
	}

	raw, ok := document.Data[championId]
	if !ok {
		return nil, &NotFoundError{ID: championId}
	}

	// Create the abilities on the slot order.
	abilities := make([]champion.Ability, 0, len(raw.Spells))
	for i, spell := range raw.Spells {
		abilities = append(abilities, a.mapToAbility(version, i, spell))
	}

	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	stats := raw.Stats
	if stats == nil {
		stats = map[string]float64{}
	}

	return &champion.Detail{
		Version:      version,
		ID:           raw.ID,
		DisplayName:  raw.Name,
		Title:        raw.Title,
		Tags:         tags,
		ResourceType: raw.Partype,
		Lore:         raw.Lore,
		IconURL:      a.ChampionIconURL(version, raw.ID),
		Passive:      a.mapToPassive(version, raw.Passive),
		Abilities:    abilities,
		BaseStats:    stats,
	}, nil
}

// sortSummaries sorts by display name with the locale collation, ties by id.
func (a *Assets) sortSummaries(summaries []champion.Summary) {
	// A collator is not safe for concurrent use, so each sort gets its own.
	collator := collate.New(localeTag(a.locale), collate.Loose)

	sort.SliceStable(summaries, func(i, j int) bool {
		cmp := collator.CompareString(summaries[i].DisplayName, summaries[j].DisplayName)
		if cmp != 0 {
			return cmp < 0
		}
		return summaries[i].ID < summaries[j].ID
	})
}

// localeTag converts a data locale like "es_ES" to a language tag.
func localeTag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
