package leaguefetcher

// LeagueEntry defines the type returned by the league entries.
type LeagueEntry struct {
	FreshBlood   bool    `json:"freshBlood"`
	HotStreak    bool    `json:"hotStreak"`
	Inactive     bool    `json:"inactive"`
	LeaguePoints int     `json:"leaguePoints"`
	Losses       int     `json:"losses"`
	Puuid        string  `json:"puuid"`
	QueueType    *string `json:"queueType,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	Tier         *string `json:"tier,omitempty"`
	Veteran      bool    `json:"veteran"`
	Wins         int     `json:"wins"`
}

// HighEloLeagueEntry come in a very similar way.
// Only having some outer keys.
type HighEloLeagueEntry struct {
	Entries  []LeagueEntry `json:"entries"`
	LeagueId string        `json:"leagueId"`
	Name     string        `json:"name"`
	Queue    string        `json:"queue"`
	Tier     string        `json:"tier"`
}
