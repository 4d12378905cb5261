package playerfetcher

// SummonerByPuuid is the return of the platform summoner endpoint.
type SummonerByPuuid struct {
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Account is the return of the regional account endpoint.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// RiotId formats the account as name#tag.
func (a *Account) RiotId() string {
	return a.GameName + "#" + a.TagLine
}
