// Package meals exposes thin JSON proxies over the recipe provider for
// the browse pages: categories, category listings, name search and meal
// detail lookups.
package meals

import (
	"net/http"
	"strings"

	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxListed caps category and name-search listings.
const maxListed = 10

// Handler serves the provider proxy endpoints.
type Handler struct {
	meals *mealdb.Client
}

// NewHandler creates the meals handler.
func NewHandler(meals *mealdb.Client) *Handler {
	return &Handler{meals: meals}
}

// HandleCategories handles GET /api/categories.
func (h *Handler) HandleCategories(c *gin.Context) {
	categories, err := h.meals.Categories(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "Failed to fetch categories", err)
		return
	}
	if categories == nil {
		categories = []mealdb.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// HandleCategoryMeals handles GET /api/categories/:category/meals.
func (h *Handler) HandleCategoryMeals(c *gin.Context) {
	category := c.Param("category")
	meals, err := h.meals.FilterByCategory(c.Request.Context(), category)
	if err != nil {
		h.upstreamError(c, "Failed to fetch category meals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": capMeals(meals)})
}

// HandleSearch handles GET /api/search?q=.
func (h *Handler) HandleSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		common.RespondError(c, common.ErrInvalidRequest)
		return
	}

	meals, err := h.meals.SearchByName(c.Request.Context(), query)
	if err != nil {
		h.upstreamError(c, "Failed to search meals", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": capMeals(meals)})
}

// HandleMealByID handles GET /api/meals/:id.
func (h *Handler) HandleMealByID(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.meals.LookupByID(c.Request.Context(), id)
	if err != nil {
		h.upstreamError(c, "Failed to fetch meal", err)
		return
	}
	if detail == nil {
		common.RespondError(c, common.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *Handler) upstreamError(c *gin.Context, msg string, err error) {
	common.LogError(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	common.RespondError(c, common.ErrUpstreamError)
}

func capMeals(meals []mealdb.Meal) []mealdb.Meal {
	if meals == nil {
		return []mealdb.Meal{}
	}
	if len(meals) > maxListed {
		return meals[:maxListed]
	}
	return meals
}
