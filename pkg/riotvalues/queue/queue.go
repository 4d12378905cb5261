package queuevalues

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	RankedSolo = "RANKED_SOLO_5x5"
	RankedFlex = "RANKED_FLEX_SR"
)

// DefaultRankedQueue is used when no queue is requested.
const DefaultRankedQueue = RankedSolo

// RankedQueueValue maps the numeric queue ids to the league queue names.
var RankedQueueValue = map[int]string{
	420: RankedSolo,
	440: RankedFlex,
}

// ResolveRankedQueue accepts a queue name (case insensitive) or a numeric queue id.
func ResolveRankedQueue(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultRankedQueue, nil
	}

	if id, err := strconv.Atoi(input); err == nil {
		if name, ok := RankedQueueValue[id]; ok {
			return name, nil
		}
		return "", fmt.Errorf("queue %d has no ranked leaderboard", id)
	}

	for _, name := range RankedQueueValue {
		if strings.EqualFold(name, input) {
			return name, nil
		}
	}

	return "", fmt.Errorf("unknown ranked queue %q", input)
}
