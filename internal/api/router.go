package api

import (
	"context"
	"net/http"
	"time"

	healthHandler "github.com/ivanmeda/recipe-finder/internal/api/handlers/health"
	mealsHandler "github.com/ivanmeda/recipe-finder/internal/api/handlers/meals"
	recommendHandler "github.com/ivanmeda/recipe-finder/internal/api/handlers/recommend"
	searchHandler "github.com/ivanmeda/recipe-finder/internal/api/handlers/search"
	"github.com/ivanmeda/recipe-finder/internal/api/middleware"
	"github.com/ivanmeda/recipe-finder/internal/core/ai"
	"github.com/ivanmeda/recipe-finder/internal/core/geo"
	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
	"github.com/ivanmeda/recipe-finder/internal/core/recommend"
	"github.com/ivanmeda/recipe-finder/internal/core/search"
	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// timeoutDuration backstops the whole request, including the
	// otherwise-unbounded recipe provider calls.
	timeoutDuration = 60 * time.Second
	// maxBodySize limits request bodies. Search queries are tiny.
	maxBodySize = 64 << 10
)

// SetupRouter wires clients, services and routes into a gin engine.
func SetupRouter(cfg *config.Config, cache *mealdb.ResponseCache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))

	// Request timeout backstop.
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeoutDuration),
			)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
		}
	})

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cache != nil),
		zap.String("model", cfg.OpenAI.Model),
		zap.String("mealdb_base_url", cfg.MealDB.BaseURL),
	)

	aiClient := ai.NewClient(&cfg.OpenAI)
	mealsClient := mealdb.NewClient(&cfg.MealDB, cache)
	locator := geo.NewLocator(&cfg.Geo)

	searchSvc := search.NewService(aiClient, mealsClient)
	recommendSvc := recommend.NewService(locator, mealsClient)

	searchH := searchHandler.NewHandler(aiClient, searchSvc)
	recommendH := recommendHandler.NewHandler(recommendSvc)
	mealsH := mealsHandler.NewHandler(mealsClient)

	router.GET("/health", healthHandler.HealthCheck(cfg))
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/ai-search", searchH.HandleAISearch)
		apiGroup.GET("/recommendations", recommendH.HandleRecommendations)

		apiGroup.GET("/categories", mealsH.HandleCategories)
		apiGroup.GET("/categories/:category/meals", mealsH.HandleCategoryMeals)
		apiGroup.GET("/search", mealsH.HandleSearch)
		apiGroup.GET("/meals/:id", mealsH.HandleMealByID)
	}

	common.LogInfo("Router setup completed",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
	)

	return router, nil
}
