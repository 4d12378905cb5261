package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leaguehub/api/handlers"
	"leaguehub/api/services/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.Len(t, router.groups, 2)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	championHandler := handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{ChampionService: new(testutil.MockChampionService)})
	featuredHandler := handlers.NewFeaturedHandler(&handlers.FeaturedHandlerDependencies{FeaturedService: new(testutil.MockFeaturedService)})
	statusHandler := handlers.NewStatusHandler(&handlers.StatusHandlerDependencies{StatusFetcher: new(testutil.MockStatusFetcher)})

	router.SetupRoutes(championHandler, featuredHandler, statusHandler)

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, expected := range []string{
		"GET /api/health",
		"GET /api/champions",
		"GET /api/champions/:championId",
		"GET /api/featured",
		"GET /api/status/:platform",
		"GET /api/v1/champions",
		"GET /api/v1/champions/:championId",
		"GET /api/v1/featured",
		"GET /api/v1/status/:platform",
	} {
		assert.True(t, registered[expected], expected)
	}
}

func TestHealthRoute(t *testing.T) {
	router := setupTestRouter()
	router.SetupRoutes(handlers.NewStatusHandler(&handlers.StatusHandlerDependencies{}))

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRunStopsWithContext(t *testing.T) {
	router := setupTestRouter()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- router.Run(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("router didn't stop")
	}
}
