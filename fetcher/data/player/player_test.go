package playerfetcher

import (
	"context"
	"leaguehub/fetcher/requests"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Summoners are served by the platform host and accounts by the region host.
func TestPlayerFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/na1/lol/summoner/v4/summoners/by-puuid/p1":
			w.Write([]byte(`{"puuid":"p1","profileIconId":4568,"summonerLevel":512}`))
		case "/americas/riot/account/v1/accounts/by-puuid/p1":
			w.Write([]byte(`{"puuid":"p1","gameName":"Faker","tagLine":"KR1"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := requests.NewClient(&requests.ClientDeps{ApiKey: "key", URLFormat: server.URL + "/%s", Timeout: time.Second})
	fetcher := NewPlayerFetcher(client)

	summoner, err := fetcher.GetSummonerByPuuid(context.Background(), "na1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 4568, summoner.ProfileIconId)
	assert.Equal(t, 512, summoner.SummonerLevel)

	account, err := fetcher.GetAccountByPuuid(context.Background(), "americas", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Faker#KR1", account.RiotId())

	_, err = fetcher.GetAccountByPuuid(context.Background(), "europe", "p1")
	assert.True(t, requests.IsStatus(err, http.StatusNotFound))
}
