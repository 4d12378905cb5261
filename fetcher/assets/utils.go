package assets

import (
	"fmt"
	"leaguehub/pkg/models/champion"
	"net/url"
	"strconv"
)

// ChampionIconURL is the square icon of a champion.
func (a *Assets) ChampionIconURL(version string, championId string) string {
	return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", a.baseURL, version, championId)
}

// SpellIconURL is the icon of a active ability, from its image file.
func (a *Assets) SpellIconURL(version string, file string) string {
	return fmt.Sprintf("%s/cdn/%s/img/spell/%s", a.baseURL, version, file)
}

// PassiveIconURL is the icon of a passive, from its image file.
func (a *Assets) PassiveIconURL(version string, file string) string {
	return fmt.Sprintf("%s/cdn/%s/img/passive/%s", a.baseURL, version, file)
}

// ProfileIconURL is the icon of a summoner profile.
func (a *Assets) ProfileIconURL(version string, iconId int) string {
	return fmt.Sprintf("%s/cdn/%s/img/profileicon/%d.png", a.baseURL, version, iconId)
}

// championListURL is the full catalog document.
func (a *Assets) championListURL(version string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/champion.json", a.baseURL, version, a.locale)
}

// championDetailURL is the document of a single champion.
func (a *Assets) championDetailURL(version string, championId string) string {
	return fmt.Sprintf("%s/cdn/%s/data/%s/champion/%s.json", a.baseURL, version, a.locale, url.PathEscape(championId))
}

// slotFor returns the fixed label of the first four abilities, then the 1-based ordinal.
func slotFor(index int) string {
	if index < len(abilitySlots) {
		return abilitySlots[index]
	}
	return strconv.Itoa(index + 1)
}

// iconOrNil returns nil when the record has no image file.
func iconOrNil(file string, build func(string) string) *string {
	if file == "" {
		return nil
	}
	icon := build(file)
	return &icon
}

// mapToSummary converts a catalog record to a summary.
func (a *Assets) mapToSummary(version string, raw rawChampion) champion.Summary {
	tags := raw.Tags
	if tags == nil {
		tags = []string{}
	}

	return champion.Summary{
		ID:               raw.ID,
		DisplayName:      raw.Name,
		Title:            raw.Title,
		Tags:             tags,
		ShortDescription: raw.Blurb,
		IconURL:          a.ChampionIconURL(version, raw.ID),
	}
}

// mapToAbility converts a spell to a ability on a given slot.
func (a *Assets) mapToAbility(version string, index int, spell rawSpell) champion.Ability {
	return champion.Ability{
		Slot:         slotFor(index),
		Name:         spell.Name,
		Description:  spell.Description,
		Tooltip:      spell.Tooltip,
		CooldownText: spell.CooldownBurn,
		CostText:     spell.CostBurn,
		RangeText:    spell.RangeBurn,
		IconURL: iconOrNil(spell.Image.Full, func(file string) string {
			return a.SpellIconURL(version, file)
		}),
	}
}

// mapToPassive converts the passive, which has no slot.
func (a *Assets) mapToPassive(version string, passive *rawSpell) champion.Passive {
	if passive == nil {
		return champion.Passive{}
	}

	return champion.Passive{
		Name:        passive.Name,
		Description: passive.Description,
		IconURL: iconOrNil(passive.Image.Full, func(file string) string {
			return a.PassiveIconURL(version, file)
		}),
	}
}
