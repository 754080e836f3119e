package search

import (
	"context"
	"errors"
	"strings"

	"github.com/ivanmeda/recipe-finder/internal/core/ai"
	"github.com/ivanmeda/recipe-finder/internal/core/ai/prompt"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"go.uber.org/zap"
)

const (
	// maxAITerms caps how many AI-suggested terms get appended after the
	// original query.
	maxAITerms = 4

	termsTemperature = 0.3
	termsMaxTokens   = 150
)

// termExtraction is the parsed output of the search-term prompt.
type termExtraction struct {
	Terms   []string
	Message string
}

// extractTerms asks the AI provider to turn the free-text query into
// database search keywords. A failed call is surfaced to the caller; an
// unparseable or empty reply degrades to the raw query as the sole term.
func (s *Service) extractTerms(ctx context.Context, query string, lang prompt.Language) (termExtraction, error) {
	content, err := s.ai.Complete(ctx, prompt.SearchTerms(lang), query, termsTemperature, termsMaxTokens)
	if err != nil {
		if errors.Is(err, ai.ErrEmptyReply) {
			common.LogWarn("Empty term extraction reply, falling back to raw query",
				zap.String("query", query),
			)
			return termExtraction{Terms: []string{query}}, nil
		}
		return termExtraction{}, err
	}

	var parsed struct {
		Terms   []string `json:"terms"`
		Message string   `json:"message"`
	}
	if err := common.ParseJSON(common.ExtractJSONObject(content), &parsed); err != nil {
		common.LogWarn("Unparseable term extraction reply, falling back to raw query",
			zap.Error(err),
			zap.Int("content_length", len(content)),
		)
		return termExtraction{Terms: []string{query}}, nil
	}

	if len(parsed.Terms) == 0 {
		parsed.Terms = []string{query}
	}

	return termExtraction{Terms: parsed.Terms, Message: parsed.Message}, nil
}

// mergeTerms builds the term list for aggregation: the original query
// always first, then AI terms that are case-insensitively distinct from
// it, at most maxAITerms of them.
func mergeTerms(query string, aiTerms []string) []string {
	terms := []string{query}
	for _, t := range aiTerms {
		if len(terms) > maxAITerms {
			break
		}
		t = strings.TrimSpace(t)
		if t == "" || strings.EqualFold(t, query) {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}
