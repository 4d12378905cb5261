package featured

// LeaderboardEntry is a single ranked leaderboard row.
type LeaderboardEntry struct {
	Puuid        string `json:"puuid"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Rank         string `json:"rank"`
	RankTier     string `json:"rankTier"`
	HotStreak    bool   `json:"hotStreak"`
}

// Player is a leaderboard entry merged with the summoner and account lookups.
type Player struct {
	Puuid          string `json:"puuid"`
	RiotId         string `json:"riotId"`
	ProfileIconId  int    `json:"profileIconId"`
	ProfileIconURL string `json:"profileIconUrl,omitempty"`
	SummonerLevel  int    `json:"summonerLevel"`
	LeaguePoints   int    `json:"leaguePoints"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Rank           string `json:"rank"`
	RankTier       string `json:"rankTier"`
	HotStreak      bool   `json:"hotStreak"`
}

// Result is the cached unit of a (platform, queue, limit) query.
type Result struct {
	Platform string   `json:"platform"`
	Queue    string   `json:"queue"`
	Count    int      `json:"count"`
	Players  []Player `json:"players"`
}
