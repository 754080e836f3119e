package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ivanmeda/recipe-finder/internal/core/geo"
	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
	recommendcore "github.com/ivanmeda/recipe-finder/internal/core/recommend"
	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, geoHandler, mealHandler http.HandlerFunc) *gin.Engine {
	t.Helper()

	geoSrv := httptest.NewServer(geoHandler)
	t.Cleanup(geoSrv.Close)
	mealSrv := httptest.NewServer(mealHandler)
	t.Cleanup(mealSrv.Close)

	locator := geo.NewLocator(&config.GeoConfig{
		PrimaryURL:  geoSrv.URL,
		FallbackURL: geoSrv.URL,
		Timeout:     3 * time.Second,
	})
	meals := mealdb.NewClient(&config.MealDBConfig{
		BaseURL: mealSrv.URL,
		Timeout: 5 * time.Second,
	}, nil)

	handler := NewHandler(recommendcore.NewService(locator, meals))

	router := gin.New()
	router.GET("/api/recommendations", handler.HandleRecommendations)
	return router
}

func TestHandleRecommendations(t *testing.T) {
	router := newTestRouter(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success","countryCode":"IT"}`))
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"meals":[{"idMeal":"1","strMeal":"Lasagne","strMealThumb":"t"}]}`))
		},
	)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.10")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meals       []mealdb.Meal `json:"meals"`
		CountryCode *string       `json:"countryCode"`
		Areas       []string      `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Meals, 1)
	require.NotNil(t, resp.CountryCode)
	assert.Equal(t, "IT", *resp.CountryCode)
	assert.Equal(t, []string{"Italian"}, resp.Areas)
}

func TestHandleRecommendationsAlwaysAnswers200(t *testing.T) {
	// Every upstream is down; the endpoint still responds with fallback
	// content instead of an error.
	down := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	router := newTestRouter(t, down, down)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recommendations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Meals       []mealdb.Meal `json:"meals"`
		CountryCode *string       `json:"countryCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Meals)
	assert.Nil(t, resp.CountryCode)
}
