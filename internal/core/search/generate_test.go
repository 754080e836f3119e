package search

import (
	"context"
	"strings"
	"testing"

	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecipeFromFencedReply(t *testing.T) {
	svc, _, _ := newStubService(t, map[string]string{
		"generate": "```json\n{\"name\":\"Pad Thai\",\"description\":\"Stir-fried noodles.\",\"category\":\"Main Course\",\"area\":\"Thai\",\"ingredients\":[{\"name\":\"rice noodles\",\"measure\":\"200g\"}],\"instructions\":[\"Soak the noodles.\"],\"prepTime\":\"30 min\",\"servings\":\"2\"}\n```",
	}, nil)

	recipe := svc.generateRecipe(context.Background(), "pad thai", prompt.LangEnglish)
	require.NotNil(t, recipe)
	assert.Equal(t, "Pad Thai", recipe.Name)
	assert.Equal(t, "Thai", recipe.Area)
	assert.True(t, recipe.IsAIGenerated)
	assert.True(t, strings.HasPrefix(recipe.ID, "ai-"))
}

func TestGenerateRecipeMissingName(t *testing.T) {
	svc, _, _ := newStubService(t, map[string]string{
		"generate": `{"description":"something","ingredients":[]}`,
	}, nil)

	assert.Nil(t, svc.generateRecipe(context.Background(), "mystery", prompt.LangEnglish))
}

func TestGenerateRecipeDefaultsEmptySlices(t *testing.T) {
	svc, _, _ := newStubService(t, map[string]string{
		"generate": `{"name":"Bare Recipe"}`,
	}, nil)

	recipe := svc.generateRecipe(context.Background(), "bare", prompt.LangEnglish)
	require.NotNil(t, recipe)
	assert.NotNil(t, recipe.Ingredients)
	assert.Empty(t, recipe.Ingredients)
	assert.NotNil(t, recipe.Instructions)
	assert.Empty(t, recipe.Instructions)
}

func TestGenerateRecipeRequestFailure(t *testing.T) {
	svc, _, _ := newStubService(t, map[string]string{}, nil)
	assert.Nil(t, svc.generateRecipe(context.Background(), "anything", prompt.LangSerbian))
}

func TestNewRecipeIDFormat(t *testing.T) {
	id := newRecipeID()
	assert.True(t, strings.HasPrefix(id, "ai-"))
	assert.NotEqual(t, id, newRecipeID())
}
