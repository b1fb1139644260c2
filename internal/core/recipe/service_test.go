package recipe

import (
	"context"
	"testing"

	"recipe-importer/internal/core/analytics"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const servicePage = `<script type="application/ld+json">
{"@type": "Recipe", "name": "Service Soup",
 "recipeIngredient": ["2 carrots", "4 cups broth"],
 "recipeInstructions": "Chop the carrots finely.\nSimmer in broth for twenty minutes."}
</script>`

// mapStore 測試用的緩存後端
type mapStore struct {
	data map[string]string
	sets int
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (s *mapStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := s.data[key]; ok {
		return v, nil
	}
	return "", common.ErrCacheDisabled
}

func (s *mapStore) Set(ctx context.Context, key, value string) error {
	s.sets++
	s.data[key] = value
	return nil
}

func (s *mapStore) Close() error { return nil }

func newTestService(store *mapStore) *Service {
	cfg := &config.Config{}
	return NewService(cfg, nil, store, analytics.NewTracker())
}

func TestServiceParse(t *testing.T) {
	svc := newTestService(newMapStore())

	recipe, err := svc.Parse(context.Background(), servicePage, "https://example.com/soup", false)
	require.NoError(t, err)
	assert.Equal(t, "Service Soup", recipe.Title)
	assert.Nil(t, recipe.Classification)
}

func TestServiceParseWithClassification(t *testing.T) {
	svc := newTestService(newMapStore())

	recipe, err := svc.Parse(context.Background(), servicePage, "", true)
	require.NoError(t, err)
	require.NotNil(t, recipe.Classification)
	assert.Equal(t, common.CourseSoup, recipe.Classification.Course)
}

func TestServiceParseCachesResult(t *testing.T) {
	store := newMapStore()
	svc := newTestService(store)
	ctx := context.Background()

	first, err := svc.Parse(ctx, servicePage, "https://example.com/soup", false)
	require.NoError(t, err)
	assert.Equal(t, 1, store.sets)

	// 第二次走緩存，不再寫入
	second, err := svc.Parse(ctx, servicePage, "https://example.com/soup", false)
	require.NoError(t, err)
	assert.Equal(t, 1, store.sets)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, first.Ingredients, second.Ingredients)
}

func TestServiceParseValidationFailureNotCached(t *testing.T) {
	store := newMapStore()
	svc := newTestService(store)

	_, err := svc.Parse(context.Background(), "<html><p>nothing</p></html>", "", false)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
	assert.Equal(t, 0, store.sets)
}

func TestServiceClassify(t *testing.T) {
	svc := newTestService(newMapStore())

	r := &common.ParsedRecipe{
		Title:        "Quick Salad",
		Ingredients:  []string{"2 cups spinach", "1 lemon, juiced"},
		Instructions: []string{"Toss everything together and serve."},
	}
	c := svc.Classify(r)
	assert.Equal(t, common.CourseSalad, c.Course)
	assert.Contains(t, c.FlavorProfiles, common.FlavorBrightAcidic)
}
