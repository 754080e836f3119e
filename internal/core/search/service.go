// Package search implements the AI-assisted recipe search orchestration:
// term extraction, multi-source aggregation with deduplication, conditional
// translation and the AI-recipe fallback.
package search

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ivanmeda/recipe-finder/internal/core/ai"
	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"
	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

// generationThreshold is the aggregated result count below which a
// synthetic recipe is generated as fallback.
const generationThreshold = 3

const (
	translationMaxTokens       = 500
	sparseTranslationMaxTokens = 300
)

// Service orchestrates one AI search request against the AI provider and
// the recipe database. It holds no per-request state.
type Service struct {
	ai    *ai.Client
	meals *mealdb.Client

	// shuffle randomizes area-filter picks. Swappable so tests can pin
	// the order.
	shuffle func(n int, swap func(i, j int))
}

// NewService creates the search orchestrator.
func NewService(aiClient *ai.Client, meals *mealdb.Client) *Service {
	return &Service{
		ai:      aiClient,
		meals:   meals,
		shuffle: rand.Shuffle,
	}
}

// Search runs the full pipeline for one query. The only error it returns
// is a failed term-extraction call (handlers map it to 502); everything
// downstream degrades instead of failing.
func (s *Service) Search(ctx context.Context, query string, lang prompt.Language) (*Result, error) {
	extraction, err := s.extractTerms(ctx, query, lang)
	if err != nil {
		return nil, common.ErrAIRequestFailed.WithErr(err)
	}

	allTerms := mergeTerms(query, extraction.Terms)
	meals := s.aggregate(ctx, allTerms, extraction.Terms)

	common.LogInfo("Search aggregation completed",
		zap.String("query", query),
		zap.Strings("terms", allTerms),
		zap.Int("meals", len(meals)),
	)

	result := &Result{
		Meals:        meals,
		Translations: map[string]string{},
		Message:      extraction.Message,
		SearchTerms:  allTerms,
	}

	if len(meals) >= generationThreshold {
		if lang.NeedsTranslation() {
			result.Translations = s.translateNames(ctx, meals, translationMaxTokens)
			applyTranslations(result.Meals, result.Translations)
		}
		if result.Message == "" {
			result.Message = foundMessage(lang, len(meals), query)
		}
		return result, nil
	}

	// Too few database hits: generate a recipe, and still translate the
	// few hits we do have so sparse results render like full ones.
	result.AIGenerated = s.generateRecipe(ctx, query, lang)
	if lang.NeedsTranslation() && len(meals) > 0 {
		result.Translations = s.translateNames(ctx, meals, sparseTranslationMaxTokens)
		applyTranslations(result.Meals, result.Translations)
	}
	result.Message = fallbackMessage(lang, query, result.AIGenerated != nil)

	return result, nil
}

func foundMessage(lang prompt.Language, count int, query string) string {
	if lang == prompt.LangSerbian {
		return fmt.Sprintf("Pronašao sam %d recepata za %q. Evo šta preporučujem! 👨‍🍳", count, query)
	}
	return fmt.Sprintf("Found %d recipes for %q. Here's what I recommend! 👨‍🍳", count, query)
}

func fallbackMessage(lang prompt.Language, query string, generated bool) string {
	if generated {
		if lang == prompt.LangSerbian {
			return fmt.Sprintf("Nisam pronašao %q u bazi, ali sam ti pripremio recept! 🤖👨‍🍳", query)
		}
		return fmt.Sprintf("%q isn't in our database, but I generated a recipe for you! 🤖👨‍🍳", query)
	}
	if lang == prompt.LangSerbian {
		return fmt.Sprintf("Nisam pronašao recepte za %q. Pokušaj nešto drugo!", query)
	}
	return fmt.Sprintf("No recipes found for %q. Try something else!", query)
}
