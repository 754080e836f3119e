package search

import (
	"context"

	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

const translationTemperature = 0.1

// translateNames requests one batch translation for all meal names. Any
// failure degrades to an empty map, which callers treat as "show the
// original names". Translation must never fail a search.
func (s *Service) translateNames(ctx context.Context, meals []MealResult, maxTokens int) map[string]string {
	translations := map[string]string{}
	if len(meals) == 0 {
		return translations
	}

	names := make([]string, len(meals))
	for i, m := range meals {
		names[i] = m.Name
	}

	content, err := s.ai.Complete(ctx, prompt.Translation(names), "Translate.", translationTemperature, maxTokens)
	if err != nil {
		common.LogWarn("Translation request failed, keeping original names",
			zap.Error(err),
			zap.Int("names", len(names)),
		)
		return translations
	}

	if err := common.ParseJSON(common.ExtractJSONObject(content), &translations); err != nil {
		common.LogWarn("Unparseable translation reply, keeping original names",
			zap.Error(err),
		)
		return map[string]string{}
	}

	return translations
}

// applyTranslations fills Translated on each meal, falling back to the
// original name for entries the translation map is missing.
func applyTranslations(meals []MealResult, translations map[string]string) {
	if len(translations) == 0 {
		return
	}
	for i := range meals {
		if t, ok := translations[meals[i].Name]; ok && t != "" {
			meals[i].Translated = t
		} else {
			meals[i].Translated = meals[i].Name
		}
	}
}
