package championservice

import (
	"context"
	"errors"
	"leaguehub/api/cache"
	"leaguehub/api/services/testutil"
	"leaguehub/fetcher/assets"
	clocktest "leaguehub/internal/testutil"
	"leaguehub/pkg/models/champion"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to create the service with memory only caches on a fake clock.
func setupTestService(t *testing.T) (*ChampionService, *testutil.MockCatalogSource, *clocktest.FakeClock) {
	t.Helper()

	clock := clocktest.NewFakeClock()
	options := []cache.Option{cache.WithClock(clock.Now), cache.WithSweepInterval(0)}

	versionCache := cache.NewStore[string](&cache.StoreDeps{TTL: time.Hour, Options: options})
	listCache := cache.NewStore[*champion.Listing](&cache.StoreDeps{TTL: time.Hour, Options: options})
	detailCache := cache.NewStore[*champion.Detail](&cache.StoreDeps{TTL: time.Hour, Options: options})
	t.Cleanup(func() {
		versionCache.Close()
		listCache.Close()
		detailCache.Close()
	})

	source := new(testutil.MockCatalogSource)
	service := NewChampionService(&ChampionServiceDeps{
		Source:       source,
		VersionCache: versionCache,
		ListCache:    listCache,
		DetailCache:  detailCache,
	})

	return service, source, clock
}

var testSummaries = []champion.Summary{
	{ID: "Aatrox", DisplayName: "Aatrox"},
	{ID: "Ahri", DisplayName: "Ahri"},
}

// Two calls within the TTL hit the upstream once, a call after the TTL refetches.
func TestListSummariesCaching(t *testing.T) {
	service, source, clock := setupTestService(t)
	ctx := context.Background()

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Twice()
	source.On("GetChampionSummaries", mock.Anything, "14.1.1").Return(testSummaries, nil).Twice()

	listing, cached, err := service.ListSummaries(ctx)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, &champion.Listing{Version: "14.1.1", Count: 2, Champions: testSummaries}, listing)

	_, cached, err = service.ListSummaries(ctx)
	require.NoError(t, err)
	assert.True(t, cached)
	source.AssertNumberOfCalls(t, "GetLatestVersion", 1)
	source.AssertNumberOfCalls(t, "GetChampionSummaries", 1)

	clock.Advance(time.Hour)

	_, cached, err = service.ListSummaries(ctx)
	require.NoError(t, err)
	assert.False(t, cached)

	testutil.VerifyAllMocks(t, source)
}

func TestResolveVersionFailure(t *testing.T) {
	service, source, _ := setupTestService(t)
	upstreamErr := errors.New("connection refused")

	source.On("GetLatestVersion", mock.Anything).Return("", upstreamErr).Once()

	_, _, err := service.ListSummaries(context.Background())
	assert.ErrorIs(t, err, upstreamErr)

	// Nothing was cached, the next call tries again.
	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	version, err := service.ResolveVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.1.1", version)

	source.AssertNotCalled(t, "GetChampionSummaries", mock.Anything, mock.Anything)
	testutil.VerifyAllMocks(t, source)
}

func TestListSummariesFailureIsNotCached(t *testing.T) {
	service, source, _ := setupTestService(t)
	upstreamErr := errors.New("bad gateway")

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionSummaries", mock.Anything, "14.1.1").Return(nil, upstreamErr).Once()
	source.On("GetChampionSummaries", mock.Anything, "14.1.1").Return(testSummaries, nil).Once()

	_, _, err := service.ListSummaries(context.Background())
	assert.ErrorIs(t, err, upstreamErr)

	listing, cached, err := service.ListSummaries(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, listing.Count)

	testutil.VerifyAllMocks(t, source)
}

func TestGetDetail(t *testing.T) {
	service, source, _ := setupTestService(t)
	detail := &champion.Detail{Version: "14.1.1", ID: "Ahri"}

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionDetail", mock.Anything, "14.1.1", "Ahri").Return(detail, nil).Once()

	result, cached, err := service.GetDetail(context.Background(), "Ahri")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, detail, result)

	result, cached, err = service.GetDetail(context.Background(), "Ahri")
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, detail, result)

	testutil.VerifyAllMocks(t, source)
}

func TestGetDetailNotFound(t *testing.T) {
	service, source, _ := setupTestService(t)

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionDetail", mock.Anything, "14.1.1", "NonexistentChamp").
		Return(nil, &assets.NotFoundError{ID: "NonexistentChamp"}).Twice()

	for range 2 {
		_, _, err := service.GetDetail(context.Background(), "NonexistentChamp")

		var notFound *assets.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	}

	testutil.VerifyAllMocks(t, source)
}

// Concurrent misses share one upstream fetch.
func TestListSummariesSingleFlight(t *testing.T) {
	service, source, _ := setupTestService(t)
	release := make(chan time.Time)

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionSummaries", mock.Anything, "14.1.1").
		WaitUntil(release).
		Return(testSummaries, nil).Once()

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			listing, _, err := service.ListSummaries(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 2, listing.Count)
		}()
	}

	// Let the goroutines pile up on the in flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	testutil.VerifyAllMocks(t, source)
}

// The first caller going away doesn't fail the callers sharing its fetch.
func TestGetDetailFirstCallerCanceled(t *testing.T) {
	service, source, _ := setupTestService(t)
	release := make(chan time.Time)
	detail := &champion.Detail{Version: "14.1.1", ID: "Ahri"}

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionDetail", mock.Anything, "14.1.1", "Ahri").
		WaitUntil(release).
		Return(detail, nil).Once()

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, _, err := service.GetDetail(firstCtx, "Ahri")
		firstErr <- err
	}()
	time.Sleep(50 * time.Millisecond)

	second := make(chan *champion.Detail, 1)
	go func() {
		result, _, err := service.GetDetail(context.Background(), "Ahri")
		assert.NoError(t, err)
		second <- result
	}()
	time.Sleep(50 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, detail, <-second)
	testutil.VerifyAllMocks(t, source)
}

func TestWarm(t *testing.T) {
	service, source, _ := setupTestService(t)

	source.On("GetLatestVersion", mock.Anything).Return("14.1.1", nil).Once()
	source.On("GetChampionSummaries", mock.Anything, "14.1.1").Return(testSummaries, nil).Once()
	source.On("GetLatestVersion", mock.Anything).Return("14.2.1", nil).Once()
	source.On("GetChampionSummaries", mock.Anything, "14.2.1").Return(testSummaries, nil).Once()

	_, _, err := service.ListSummaries(context.Background())
	require.NoError(t, err)

	// Warm replaces the cached values before they expire.
	listing, err := service.Warm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.2.1", listing.Version)

	listing, cached, err := service.ListSummaries(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, "14.2.1", listing.Version)

	version, err := service.ResolveVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.2.1", version)

	testutil.VerifyAllMocks(t, source)
}
