package search

import (
	"sync"

	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
)

// MealResult is one aggregated search hit. Field names on the wire match
// the recipe provider's format so clients can treat both alike.
type MealResult struct {
	mealdb.Meal
	Translated string `json:"strMealTranslated,omitempty"`
}

// GeneratedRecipe is a synthetic recipe produced by the AI provider when
// the recipe database has too few matches. It lives only for the duration
// of one response and is never persisted.
type GeneratedRecipe struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Area          string                `json:"area"`
	Ingredients   []GeneratedIngredient `json:"ingredients"`
	Instructions  []string              `json:"instructions"`
	PrepTime      string                `json:"prepTime"`
	Servings      string                `json:"servings"`
	IsAIGenerated bool                  `json:"isAiGenerated"`
}

// GeneratedIngredient is one ingredient of a generated recipe.
type GeneratedIngredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Result is the full AI-search response payload.
type Result struct {
	Meals        []MealResult      `json:"meals"`
	Translations map[string]string `json:"translations"`
	Message      string            `json:"message"`
	SearchTerms  []string          `json:"searchTerms"`
	AIGenerated  *GeneratedRecipe  `json:"aiGenerated"`
}

// resultSet collects meals from the search phases, deduplicated by meal id
// in discovery order. The first writer for an id wins: identity, name and
// thumbnail are immutable once inserted.
type resultSet struct {
	mu    sync.Mutex
	order []string
	byID  map[string]MealResult
}

func newResultSet() *resultSet {
	return &resultSet{
		byID: make(map[string]MealResult),
	}
}

// add merges up to limit meals into the set (0 means all). The limit
// applies to the incoming list, before deduplication, matching the
// per-phase caps of the search strategies.
func (s *resultSet) add(meals []mealdb.Meal, limit int) {
	if limit > 0 && len(meals) > limit {
		meals = meals[:limit]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range meals {
		if m.ID == "" {
			continue
		}
		if _, exists := s.byID[m.ID]; exists {
			continue
		}
		s.byID[m.ID] = MealResult{Meal: m}
		s.order = append(s.order, m.ID)
	}
}

func (s *resultSet) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// list returns up to max meals in insertion order.
func (s *resultSet) list(max int) []MealResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	meals := make([]MealResult, 0, len(s.order))
	for _, id := range s.order {
		if len(meals) >= max {
			break
		}
		meals = append(meals, s.byID[id])
	}
	return meals
}
