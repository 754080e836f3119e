package prompt

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language is the user-facing language of a request.
type Language string

const (
	LangEnglish Language = "en"
	LangSerbian Language = "sr"
)

// Parse normalizes a language tag, defaulting unknown tags to English.
func Parse(tag string) Language {
	if strings.ToLower(strings.TrimSpace(tag)) == string(LangSerbian) {
		return LangSerbian
	}
	return LangEnglish
}

// NeedsTranslation reports whether meal names need translating for l.
// The recipe database is in English.
func (l Language) NeedsTranslation() bool {
	return l == LangSerbian
}

// Name returns the English name of the language, for embedding in prompts.
func (l Language) Name() string {
	if l == LangSerbian {
		return "Serbian"
	}
	return "English"
}

// SearchTerms builds the system instruction for extracting recipe search
// keywords from a free-text craving description.
func SearchTerms(lang Language) string {
	var langInstruction string
	if lang == LangSerbian {
		langInstruction = `
The user is speaking Serbian. Respond with a JSON object where:
- "terms" is an array of 2-4 English food search keywords
- "message" is a friendly Serbian message like "Tražim recepte za [dish]... 🔍"`
	} else {
		langInstruction = `
Respond with a JSON object where:
- "terms" is an array of 2-4 English food search keywords
- "message" is a friendly English message about searching for the dish`
	}

	return `You are a recipe search assistant. The user will describe what they want to eat in natural language (possibly in Serbian or English).

Your job: extract 2-4 simple English food search keywords that would find matching recipes in a recipe database.

Rules:
- Keywords should be common English food terms (the database is in English)
- If the user mentions a specific dish name (e.g. "burek", "pad thai", "tiramisu"), include that EXACT name as a keyword too
- If the user mentions a cuisine (Italian, Mexican, etc.), include a typical dish name from that cuisine
- If vague ("something quick"), pick popular categories like "chicken", "salad", "soup"
- Maximum 4 terms. Each term should be 1-2 words.
- Return ONLY valid JSON, no markdown, no explanation.
` + langInstruction + `

Return format: {"terms": ["term1", "term2"], "message": "friendly message"}`
}

// RecipeGeneration builds the system instruction for generating a complete
// recipe when the recipe database has no match.
func RecipeGeneration(lang Language) string {
	language := lang.Name()
	return fmt.Sprintf(`You are a professional chef and recipe writer. The user searched for a dish that isn't in our database. Generate a complete, authentic recipe.

RESPOND ENTIRELY IN %s.

Return ONLY valid JSON (no markdown, no explanation) with this exact structure:
{
  "name": "Recipe name in %s",
  "description": "1-2 sentence description in %s",
  "category": "Main Course|Side|Dessert|Starter|Soup",
  "area": "Region/cuisine origin in %s",
  "ingredients": [
    {"name": "ingredient in %s", "measure": "amount"}
  ],
  "instructions": [
    "Step 1 in %s",
    "Step 2 in %s"
  ],
  "prepTime": "45 min",
  "servings": "4"
}

Be authentic. Use traditional ingredients and methods. 8-15 ingredients, 5-10 steps.`,
		strings.ToUpper(language), language, language, language, language, language, language)
}

// Translation builds the system instruction for batch-translating meal
// names to Serbian.
func Translation(mealNames []string) string {
	names, err := json.Marshal(mealNames)
	if err != nil {
		names = []byte("[]")
	}
	return fmt.Sprintf(`Translate these English recipe names to Serbian. Return ONLY a JSON object mapping English→Serbian.
No explanation, no markdown. Example: {"Chicken Alfredo": "Piletina Alfredo"}

Names to translate:
%s`, names)
}
