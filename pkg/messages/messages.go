package messages

const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	ChampionNotFoundMsg = "champion %s not found"
	FailedToParseMsg    = "failed to parse API response on URL %s"
	MissingApiKeyMsg    = "missing RIOT_API_KEY"
	RequestFailedMsg    = "API request failed on URL %s"
)
