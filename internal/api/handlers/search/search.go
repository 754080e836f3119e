package search

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ivanmeda/recipe-finder/internal/core/ai"
	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"
	searchcore "github.com/ivanmeda/recipe-finder/internal/core/search"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Request is the AI search request body.
type Request struct {
	Query string `json:"query"`
	Lang  string `json:"lang"`
}

// Handler serves the AI-assisted search endpoint.
type Handler struct {
	ai      *ai.Client
	service *searchcore.Service
}

// NewHandler creates the AI search handler.
func NewHandler(aiClient *ai.Client, service *searchcore.Service) *Handler {
	return &Handler{
		ai:      aiClient,
		service: service,
	}
}

// HandleAISearch handles POST /api/ai-search.
func (h *Handler) HandleAISearch(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, common.ErrInvalidRequest)
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		common.RespondError(c, common.ErrInvalidRequest)
		return
	}

	// Fail fast before any network call when no AI credential is set.
	if !h.ai.Configured() {
		common.RespondError(c, common.ErrAINotConfigured)
		return
	}

	lang := prompt.Parse(req.Lang)

	result, err := h.service.Search(c.Request.Context(), query, lang)
	if err != nil {
		var cerr *common.CustomError
		if errors.As(err, &cerr) {
			common.LogError("AI search failed",
				zap.Error(err),
				zap.String("query", query),
				zap.String("code", cerr.Code),
			)
			common.RespondError(c, cerr)
			return
		}
		common.LogError("AI search failed", zap.Error(err), zap.String("query", query))
		common.RespondError(c, common.ErrInternalError)
		return
	}

	c.JSON(http.StatusOK, result)
}
