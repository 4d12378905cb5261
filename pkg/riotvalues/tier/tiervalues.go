package tiervalues

import (
	"slices"
	"strings"
)

// Ordered ranked tiers, lowest first.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}

// Divisions, lowest first.
var rankNames = []string{"IV", "III", "II", "I"}

// Tiers without divisions.
var apexTiers = []string{"MASTER", "GRANDMASTER", "CHALLENGER"}

// IsApex reports if the tier has no divisions.
func IsApex(tier string) bool {
	return slices.Contains(apexTiers, normalize(tier))
}

// FormatRankTier returns the display form of a tier and division, like "GOLD II".
// Apex tiers are shown without the division, unknown tiers result in a empty string.
func FormatRankTier(tier string, rank string) string {
	tier = normalize(tier)
	if !slices.Contains(tierNames, tier) {
		return ""
	}

	// Don't add the division if it's a high elo.
	if IsApex(tier) {
		return tier
	}

	rank = normalize(rank)
	if !slices.Contains(rankNames, rank) {
		return tier
	}

	return tier + " " + rank
}

func normalize(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
