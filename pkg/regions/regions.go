package regions

import (
	"fmt"
	"slices"
	"strings"
)

// Platform routing serves league and summoner lookups, region routing serves accounts.
// Create the types for clarity.
type (
	Region   string
	Platform string
)

const (
	Americas Region = "AMERICAS"
	Asia     Region = "ASIA"
	Europe   Region = "EUROPE"
)

// DefaultPlatform is used when no platform is requested.
const DefaultPlatform Platform = "euw1"

// Known platform routing values, grouped by the cluster that serves them.
// Only these can become a host label.
var PlatformList = map[Region][]Platform{
	Americas: {"br1", "la1", "la2", "na1"},
	Europe:   {"eun1", "euw1", "tr1", "me1", "ru"},
	Asia:     {"kr", "jp1"},
	"SEA":    {"oc1", "sg2", "tw2", "vn2"},
}

// Prefix rules, evaluated in order.
var prefixRules = []struct {
	prefixes []string
	region   Region
}{
	{[]string{"eu"}, Europe},
	{[]string{"na", "br", "la"}, Americas},
	{[]string{"kr", "jp"}, Asia},
}

// RegionFor returns the account routing region of a platform.
// Unknown platforms fall back to EUROPE.
func RegionFor(platform Platform) Region {
	p := strings.ToLower(string(platform))

	for _, rule := range prefixRules {
		for _, prefix := range rule.prefixes {
			if strings.HasPrefix(p, prefix) {
				return rule.region
			}
		}
	}

	return Europe
}

// Host returns the host label of the region.
func (r Region) Host() string {
	return strings.ToLower(string(r))
}

// ParsePlatform lowercases and trims the platform, using the default if empty.
// Anything that isn't a known platform is rejected.
func ParsePlatform(platform string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(platform)))
	if p == "" {
		return DefaultPlatform, nil
	}

	for _, platforms := range PlatformList {
		if slices.Contains(platforms, p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("unknown platform %q", platform)
}

// Host returns the host label of the platform.
func (p Platform) Host() string {
	return string(p)
}
