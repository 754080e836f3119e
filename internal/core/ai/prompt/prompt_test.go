package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, LangSerbian, Parse("sr"))
	assert.Equal(t, LangSerbian, Parse(" SR "))
	assert.Equal(t, LangEnglish, Parse("en"))
	assert.Equal(t, LangEnglish, Parse(""))
	assert.Equal(t, LangEnglish, Parse("de"))
}

func TestNeedsTranslation(t *testing.T) {
	assert.True(t, LangSerbian.NeedsTranslation())
	assert.False(t, LangEnglish.NeedsTranslation())
}

func TestSearchTermsLanguageInstruction(t *testing.T) {
	sr := SearchTerms(LangSerbian)
	assert.Contains(t, sr, "The user is speaking Serbian")
	assert.Contains(t, sr, `{"terms": ["term1", "term2"], "message": "friendly message"}`)

	en := SearchTerms(LangEnglish)
	assert.NotContains(t, en, "Serbian message")
	assert.Contains(t, en, "friendly English message")
}

func TestRecipeGenerationLanguage(t *testing.T) {
	sr := RecipeGeneration(LangSerbian)
	assert.Contains(t, sr, "RESPOND ENTIRELY IN SERBIAN.")
	assert.Contains(t, sr, `"name": "Recipe name in Serbian"`)

	en := RecipeGeneration(LangEnglish)
	assert.Contains(t, en, "RESPOND ENTIRELY IN ENGLISH.")
}

func TestTranslationEmbedsNames(t *testing.T) {
	p := Translation([]string{"Chicken Alfredo", "Beef Wellington"})
	assert.Contains(t, p, `["Chicken Alfredo","Beef Wellington"]`)
	assert.Contains(t, p, "Translate these English recipe names to Serbian")
}
