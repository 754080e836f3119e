package search

import (
	"context"
	"fmt"
	"time"

	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	generationTemperature = 0.7
	generationMaxTokens   = 800
)

// generateRecipe asks the AI provider for a complete recipe in the target
// language. Generation is best-effort: any failure returns nil and the
// search response goes out without a synthetic recipe.
func (s *Service) generateRecipe(ctx context.Context, query string, lang prompt.Language) *GeneratedRecipe {
	content, err := s.ai.Complete(ctx, prompt.RecipeGeneration(lang),
		"Generate a recipe for: "+query, generationTemperature, generationMaxTokens)
	if err != nil {
		common.LogWarn("Recipe generation request failed",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil
	}

	var parsed struct {
		Name         string                `json:"name"`
		Description  string                `json:"description"`
		Category     string                `json:"category"`
		Area         string                `json:"area"`
		Ingredients  []GeneratedIngredient `json:"ingredients"`
		Instructions []string              `json:"instructions"`
		PrepTime     string                `json:"prepTime"`
		Servings     string                `json:"servings"`
	}
	if err := common.ParseJSON(common.ExtractJSONObject(content), &parsed); err != nil {
		common.LogWarn("Unparseable generated recipe, skipping",
			zap.Error(err),
			zap.Int("content_length", len(content)),
		)
		return nil
	}
	if parsed.Name == "" {
		common.LogWarn("Generated recipe has no name, skipping")
		return nil
	}

	recipe := &GeneratedRecipe{
		ID:            newRecipeID(),
		Name:          parsed.Name,
		Description:   parsed.Description,
		Category:      parsed.Category,
		Area:          parsed.Area,
		Ingredients:   parsed.Ingredients,
		Instructions:  parsed.Instructions,
		PrepTime:      parsed.PrepTime,
		Servings:      parsed.Servings,
		IsAIGenerated: true,
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []GeneratedIngredient{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}

	return recipe
}

// newRecipeID builds an identifier that cannot collide with provider meal
// ids: an "ai-" prefix, a millisecond timestamp and a random suffix.
func newRecipeID() string {
	return fmt.Sprintf("ai-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
