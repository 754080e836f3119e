package mealdb

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// MealDetail is a full meal record from lookup.php with the numbered
// ingredient/measure pairs already collected.
type MealDetail struct {
	ID           string       `json:"idMeal"`
	Name         string       `json:"strMeal"`
	Thumb        string       `json:"strMealThumb"`
	Category     string       `json:"strCategory"`
	Area         string       `json:"strArea"`
	Instructions string       `json:"strInstructions"`
	Youtube      string       `json:"strYoutube,omitempty"`
	Source       string       `json:"strSource,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Steps        []string     `json:"steps"`
	YoutubeID    string       `json:"youtubeId,omitempty"`
}

// Ingredient is one ingredient/measure pair of a meal detail record.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
	Image   string `json:"image"`
}

// maxIngredientFields is the number of numbered ingredient/measure field
// pairs the provider puts on a detail record.
const maxIngredientFields = 20

var youtubeIDPattern = regexp.MustCompile(`[?&]v=([^&]+)`)

// parseMealDetail builds a MealDetail from the provider's flat record.
// The raw record carries ingredients as strIngredient1..strIngredient20.
func parseMealDetail(raw map[string]interface{}) MealDetail {
	detail := MealDetail{
		ID:           stringField(raw, "idMeal"),
		Name:         stringField(raw, "strMeal"),
		Thumb:        stringField(raw, "strMealThumb"),
		Category:     stringField(raw, "strCategory"),
		Area:         stringField(raw, "strArea"),
		Instructions: stringField(raw, "strInstructions"),
		Youtube:      stringField(raw, "strYoutube"),
		Source:       stringField(raw, "strSource"),
	}

	detail.Ingredients = extractIngredients(raw)
	detail.Steps = ExtractSteps(detail.Instructions)
	detail.YoutubeID = YoutubeID(detail.Youtube)

	return detail
}

func stringField(raw map[string]interface{}, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func extractIngredients(raw map[string]interface{}) []Ingredient {
	var ingredients []Ingredient
	for i := 1; i <= maxIngredientFields; i++ {
		name := strings.TrimSpace(stringField(raw, fmt.Sprintf("strIngredient%d", i)))
		if name == "" {
			continue
		}
		measure := strings.TrimSpace(stringField(raw, fmt.Sprintf("strMeasure%d", i)))
		ingredients = append(ingredients, Ingredient{
			Name:    name,
			Measure: measure,
			Image:   fmt.Sprintf("https://www.themealdb.com/images/ingredients/%s-Small.png", url.PathEscape(name)),
		})
	}
	return ingredients
}

var sentenceBreak = regexp.MustCompile(`\.\s+(?:[A-Z])`)

// ExtractSteps splits an instruction blob into steps, first by line breaks
// and, for single-paragraph instructions, by sentence boundaries.
func ExtractSteps(instructions string) []string {
	var steps []string
	for _, line := range regexp.MustCompile(`\r?\n`).Split(instructions, -1) {
		if len(strings.TrimSpace(line)) > 2 {
			steps = append(steps, line)
		}
	}
	if len(steps) > 1 {
		return steps
	}

	steps = nil
	rest := instructions
	for {
		loc := sentenceBreak.FindStringIndex(rest)
		if loc == nil {
			break
		}
		steps = append(steps, rest[:loc[0]])
		rest = rest[loc[1]-1:] // keep the capital that starts the next sentence
	}
	steps = append(steps, rest)

	var out []string
	for _, s := range steps {
		s = strings.TrimSpace(s)
		if len(s) <= 2 {
			continue
		}
		out = append(out, strings.TrimSuffix(s, ".")+".")
	}
	return out
}

// YoutubeID pulls the video id out of a YouTube watch URL.
func YoutubeID(u string) string {
	if u == "" {
		return ""
	}
	m := youtubeIDPattern.FindStringSubmatch(u)
	if m == nil {
		return ""
	}
	return m[1]
}
