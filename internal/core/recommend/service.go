// Package recommend builds location-based cuisine recommendations from
// the client IP and the recipe provider's area filters.
package recommend

import (
	"context"
	"math/rand"

	"github.com/ivanmeda/recipe-finder/internal/core/geo"
	"github.com/ivanmeda/recipe-finder/internal/core/mealdb"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// maxMeals caps the recommendation list.
	maxMeals = 6
	// maxResponseAreas caps how many area names the response reports.
	maxResponseAreas = 2
	// fallbackArea is fetched when every mapped area fetch fails.
	fallbackArea = "Italian"
)

// Result is the recommendations response payload. CountryCode is nil when
// the client location could not be resolved.
type Result struct {
	Meals       []mealdb.Meal `json:"meals"`
	CountryCode *string       `json:"countryCode"`
	Areas       []string      `json:"areas"`
}

// Service resolves a client IP to local cuisines and samples meals from
// them. Every failure path degrades; Recommend never returns an error.
type Service struct {
	locator *geo.Locator
	meals   *mealdb.Client

	// shuffle randomizes area picks, swappable in tests.
	shuffle func(n int, swap func(i, j int))
}

// NewService creates the recommendation service.
func NewService(locator *geo.Locator, meals *mealdb.Client) *Service {
	return &Service{
		locator: locator,
		meals:   meals,
		shuffle: rand.Shuffle,
	}
}

// Recommend resolves clientIP to a country, maps it to cuisine areas and
// accumulates up to maxMeals shuffled meals across them in priority order.
func (s *Service) Recommend(ctx context.Context, clientIP string) *Result {
	countryCode := s.locator.CountryCode(ctx, clientIP)
	areas := AreasForCountry(countryCode)

	meals, allFailed := s.collectMeals(ctx, areas)
	if allFailed {
		// Every mapped area fetch failed; try one hardcoded cuisine
		// before giving up with an empty list.
		common.LogWarn("All area fetches failed, falling back to default cuisine",
			zap.Strings("areas", areas),
		)
		areas = []string{fallbackArea}
		meals, allFailed = s.collectMeals(ctx, areas)
		if allFailed {
			// Total outage: report neither a location nor cuisines.
			areas = []string{}
			countryCode = ""
		}
	}

	result := &Result{
		Meals: meals,
		Areas: areas,
	}
	if len(result.Areas) > maxResponseAreas {
		result.Areas = result.Areas[:maxResponseAreas]
	}
	if countryCode != "" {
		result.CountryCode = &countryCode
	}

	common.LogInfo("Recommendations built",
		zap.String("country_code", countryCode),
		zap.Strings("areas", result.Areas),
		zap.Int("meals", len(result.Meals)),
	)

	return result
}

// collectMeals walks areas in priority order, taking a shuffled sample
// from each until maxMeals are collected. allFailed is true when every
// single fetch errored, distinguishing outage from genuinely empty areas.
func (s *Service) collectMeals(ctx context.Context, areas []string) (meals []mealdb.Meal, allFailed bool) {
	meals = make([]mealdb.Meal, 0, maxMeals)
	failures := 0

	for _, area := range areas {
		if len(meals) >= maxMeals {
			break
		}
		areaMeals, err := s.meals.FilterByArea(ctx, area)
		if err != nil {
			common.LogWarn("Area fetch failed", zap.Error(err), zap.String("area", area))
			failures++
			continue
		}
		s.shuffle(len(areaMeals), func(i, j int) {
			areaMeals[i], areaMeals[j] = areaMeals[j], areaMeals[i]
		})
		needed := maxMeals - len(meals)
		if len(areaMeals) > needed {
			areaMeals = areaMeals[:needed]
		}
		meals = append(meals, areaMeals...)
	}

	return meals, failures == len(areas)
}
