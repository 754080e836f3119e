package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ivanmeda/recipe-finder/internal/infrastructure/config"
	"github.com/ivanmeda/recipe-finder/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Meal is a summary record as returned by the provider's search and
// filter endpoints. JSON field names follow the provider's wire format.
type Meal struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
}

// Category is one entry of the provider's category list.
type Category struct {
	ID          string `json:"idCategory"`
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

// Client is a read-only client for the recipe database API.
type Client struct {
	config *config.MealDBConfig
	client *resty.Client
	cache  *ResponseCache
}

// NewClient creates a recipe database client. cache may be nil.
func NewClient(cfg *config.MealDBConfig, cache *ResponseCache) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &Client{
		config: cfg,
		client: client,
		cache:  cache,
	}
}

// SearchByName queries search.php?s=. Never cached: name search is the
// hot path for user-typed queries.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Meal, error) {
	var result struct {
		Meals []Meal `json:"meals"`
	}
	if err := c.getJSON(ctx, "/search.php?s="+url.QueryEscape(name), ttlNone, &result); err != nil {
		return nil, err
	}
	return result.Meals, nil
}

// FilterByIngredient queries filter.php?i=.
func (c *Client) FilterByIngredient(ctx context.Context, ingredient string) ([]Meal, error) {
	var result struct {
		Meals []Meal `json:"meals"`
	}
	if err := c.getJSON(ctx, "/filter.php?i="+url.QueryEscape(ingredient), ttlNone, &result); err != nil {
		return nil, err
	}
	return result.Meals, nil
}

// FilterByArea queries filter.php?a=. Area lists change rarely, so the
// response is cacheable for a day.
func (c *Client) FilterByArea(ctx context.Context, area string) ([]Meal, error) {
	var result struct {
		Meals []Meal `json:"meals"`
	}
	if err := c.getJSON(ctx, "/filter.php?a="+url.QueryEscape(area), ttlLong, &result); err != nil {
		return nil, err
	}
	return result.Meals, nil
}

// FilterByCategory queries filter.php?c=.
func (c *Client) FilterByCategory(ctx context.Context, category string) ([]Meal, error) {
	var result struct {
		Meals []Meal `json:"meals"`
	}
	if err := c.getJSON(ctx, "/filter.php?c="+url.QueryEscape(category), ttlShort, &result); err != nil {
		return nil, err
	}
	return result.Meals, nil
}

// Categories queries categories.php.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var result struct {
		Categories []Category `json:"categories"`
	}
	if err := c.getJSON(ctx, "/categories.php", ttlLong, &result); err != nil {
		return nil, err
	}
	return result.Categories, nil
}

// LookupByID queries lookup.php?i= and returns nil when the id is unknown.
func (c *Client) LookupByID(ctx context.Context, id string) (*MealDetail, error) {
	var result struct {
		Meals []map[string]interface{} `json:"meals"`
	}
	if err := c.getJSON(ctx, "/lookup.php?i="+url.QueryEscape(id), ttlShort, &result); err != nil {
		return nil, err
	}
	if len(result.Meals) == 0 {
		return nil, nil
	}
	detail := parseMealDetail(result.Meals[0])
	return &detail, nil
}

// getJSON fetches path (relative, query included) and decodes the body,
// consulting the response cache when a TTL class is given.
func (c *Client) getJSON(ctx context.Context, path string, ttl ttlClass, v interface{}) error {
	if c.cache != nil && ttl != ttlNone {
		if body, ok := c.cache.get(ctx, path); ok {
			return common.ParseJSONBytes(body, v)
		}
	}

	resp, err := c.client.R().SetContext(ctx).Get(path)
	if err != nil {
		common.LogWarn("Recipe provider request failed",
			zap.Error(err),
			zap.String("path", path),
		)
		return fmt.Errorf("recipe provider request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		common.LogWarn("Recipe provider returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("path", path),
		)
		return fmt.Errorf("recipe provider error (status %d)", resp.StatusCode())
	}

	if err := common.ParseJSONBytes(resp.Body(), v); err != nil {
		return fmt.Errorf("failed to parse recipe provider response: %w", err)
	}

	if c.cache != nil && ttl != ttlNone {
		c.cache.set(ctx, path, resp.Body(), ttl)
	}

	return nil
}
