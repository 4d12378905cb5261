package testutil

import (
	"context"
	"encoding/json"
	"leaguehub/api/filters"
	leaguefetcher "leaguehub/fetcher/data/league"
	playerfetcher "leaguehub/fetcher/data/player"
	"leaguehub/pkg/models/champion"
	"leaguehub/pkg/models/featured"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations used on the Champion service tests.
// ============================================================================

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) GetLatestVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCatalogSource) GetChampionSummaries(ctx context.Context, version string) ([]champion.Summary, error) {
	args := m.Called(ctx, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]champion.Summary), args.Error(1)
}

func (m *MockCatalogSource) GetChampionDetail(ctx context.Context, version string, championId string) (*champion.Detail, error) {
	args := m.Called(ctx, version, championId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*champion.Detail), args.Error(1)
}

// ============================================================================
// Mock Implementations used on the Featured service tests.
// ============================================================================

// CallLog records the order of the upstream calls shared by several mocks.
type CallLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *CallLog) Add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *CallLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type MockLeaderboardFetcher struct {
	mock.Mock
	Log *CallLog
}

func (m *MockLeaderboardFetcher) GetChallengerLeague(ctx context.Context, platform string, queue string) (*leaguefetcher.HighEloLeagueEntry, error) {
	if m.Log != nil {
		m.Log.Add("league")
	}
	args := m.Called(ctx, platform, queue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leaguefetcher.HighEloLeagueEntry), args.Error(1)
}

type MockPlayerFetcher struct {
	mock.Mock
	Log *CallLog
}

func (m *MockPlayerFetcher) GetSummonerByPuuid(ctx context.Context, platform string, puuid string) (*playerfetcher.SummonerByPuuid, error) {
	if m.Log != nil {
		m.Log.Add("summoner:" + puuid)
	}
	args := m.Called(ctx, platform, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.SummonerByPuuid), args.Error(1)
}

func (m *MockPlayerFetcher) GetAccountByPuuid(ctx context.Context, region string, puuid string) (*playerfetcher.Account, error) {
	if m.Log != nil {
		m.Log.Add("account:" + puuid)
	}
	args := m.Called(ctx, region, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

type MockVersionResolver struct {
	mock.Mock
}

func (m *MockVersionResolver) ResolveVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// RecordingThrottle never sleeps, it only records the waits on the log.
// With Block set every wait lasts until the context is done.
type RecordingThrottle struct {
	Log   *CallLog
	Err   error
	Block bool
	mu    sync.Mutex
	waits int
}

func (r *RecordingThrottle) Wait(ctx context.Context) error {
	r.mu.Lock()
	r.waits++
	r.mu.Unlock()

	if r.Log != nil {
		r.Log.Add("wait")
	}
	if r.Err != nil {
		return r.Err
	}
	if r.Block {
		<-ctx.Done()
	}
	return ctx.Err()
}

func (r *RecordingThrottle) Waits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.waits
}

// ============================================================================
// Mock Implementations used on the handler tests.
// ============================================================================

type MockChampionService struct {
	mock.Mock
}

func (m *MockChampionService) ListSummaries(ctx context.Context) (*champion.Listing, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*champion.Listing), args.Bool(1), args.Error(2)
}

func (m *MockChampionService) GetDetail(ctx context.Context, championId string) (*champion.Detail, bool, error) {
	args := m.Called(ctx, championId)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*champion.Detail), args.Bool(1), args.Error(2)
}

type MockFeaturedService struct {
	mock.Mock
}

func (m *MockFeaturedService) GetFeatured(ctx context.Context, filter *filters.FeaturedFilter) (*featured.Result, bool, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*featured.Result), args.Bool(1), args.Error(2)
}

type MockStatusFetcher struct {
	mock.Mock
}

func (m *MockStatusFetcher) GetPlatformData(ctx context.Context, platform string) (json.RawMessage, error) {
	args := m.Called(ctx, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
