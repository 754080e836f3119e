package search

import "strings"

// areaKeywords maps normalized cuisine words that may show up as search
// terms to the recipe provider's area names.
var areaKeywords = map[string]string{
	"italian":    "Italian",
	"mexican":    "Mexican",
	"chinese":    "Chinese",
	"indian":     "Indian",
	"japanese":   "Japanese",
	"thai":       "Thai",
	"french":     "French",
	"greek":      "Greek",
	"turkish":    "Turkish",
	"british":    "British",
	"american":   "American",
	"vietnamese": "Vietnamese",
	"moroccan":   "Moroccan",
	"spanish":    "Spanish",
	"croatian":   "Croatian",
	"polish":     "Polish",
	"russian":    "Russian",
	"malaysian":  "Malaysian",
	"filipino":   "Filipino",
	"jamaican":   "Jamaican",
	"egyptian":   "Egyptian",
	"irish":      "Irish",
	"dutch":      "Dutch",
	"canadian":   "Canadian",
	"portuguese": "Portuguese",
	"kenyan":     "Kenyan",
	"ukrainian":  "Ukrainian",
	"norwegian":  "Norwegian",
}

// cuisineArea resolves a search term to a provider area name, if the term
// is a known cuisine word. Normalization lowercases and strips whitespace.
func cuisineArea(term string) (string, bool) {
	key := strings.ToLower(term)
	key = strings.Join(strings.Fields(key), "")
	area, ok := areaKeywords[key]
	return area, ok
}
