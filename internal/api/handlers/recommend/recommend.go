package recommend

import (
	"net/http"

	recommendcore "github.com/ivanmeda/recipe-finder/internal/core/recommend"

	"github.com/gin-gonic/gin"
)

// Handler serves the location-based recommendations endpoint.
type Handler struct {
	service *recommendcore.Service
}

// NewHandler creates the recommendations handler.
func NewHandler(service *recommendcore.Service) *Handler {
	return &Handler{service: service}
}

// HandleRecommendations handles GET /api/recommendations. It always
// answers 200: every failure inside the service degrades to fallback
// content.
func (h *Handler) HandleRecommendations(c *gin.Context) {
	// ClientIP resolves X-Forwarded-For / X-Real-IP behind proxies.
	result := h.service.Recommend(c.Request.Context(), c.ClientIP())
	c.JSON(http.StatusOK, result)
}
