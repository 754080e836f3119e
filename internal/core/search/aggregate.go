package search

import (
	"context"

	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// maxResults caps the merged result list.
	maxResults = 10
	// maxIngredientTerms limits the ingredient-filter phase to the first
	// AI-suggested terms.
	maxIngredientTerms = 2
	// maxPerIngredient limits how many meals one ingredient filter may
	// contribute.
	maxPerIngredient = 5
	// maxPerArea limits how many meals one area filter may contribute.
	maxPerArea = 4
	// areaSkipThreshold skips area filters once this many meals were
	// already collected.
	areaSkipThreshold = 8
)

// aggregate runs the three search strategies against the recipe provider
// and merges their hits into one deduplicated, order-preserving list of at
// most maxResults meals. A failing call contributes nothing; aggregation
// always completes.
func (s *Service) aggregate(ctx context.Context, allTerms, aiTerms []string) []MealResult {
	set := newResultSet()

	// Phase 1: name search for every term, in parallel.
	g, gctx := errgroup.WithContext(ctx)
	for _, term := range allTerms {
		g.Go(func() error {
			meals, err := s.meals.SearchByName(gctx, term)
			if err != nil {
				common.LogWarn("Name search failed", zap.Error(err), zap.String("term", term))
				return nil
			}
			set.add(meals, 0)
			return nil
		})
	}
	_ = g.Wait()

	// Phase 2: ingredient filter for the first AI terms, in parallel.
	g, gctx = errgroup.WithContext(ctx)
	for i, term := range aiTerms {
		if i >= maxIngredientTerms {
			break
		}
		g.Go(func() error {
			meals, err := s.meals.FilterByIngredient(gctx, term)
			if err != nil {
				common.LogWarn("Ingredient filter failed", zap.Error(err), zap.String("term", term))
				return nil
			}
			set.add(meals, maxPerIngredient)
			return nil
		})
	}
	_ = g.Wait()

	// Phase 3: area filter for terms naming a cuisine along the way. The
	// size check runs per term, so this phase stays sequential. Shuffling
	// trades repeatability for variety on purpose.
	for _, term := range allTerms {
		area, ok := cuisineArea(term)
		if !ok || set.size() >= areaSkipThreshold {
			continue
		}
		meals, err := s.meals.FilterByArea(ctx, area)
		if err != nil {
			common.LogWarn("Area filter failed", zap.Error(err), zap.String("area", area))
			continue
		}
		s.shuffle(len(meals), func(i, j int) {
			meals[i], meals[j] = meals[j], meals[i]
		})
		set.add(meals, maxPerArea)
	}

	return set.list(maxResults)
}
