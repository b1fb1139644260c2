package parse

import (
	"errors"
	"testing"

	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const soupPage = `<html><head>
<title>Test Soup | Some Food Blog</title>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Recipe",
  "name": "Test Soup",
  "description": "A simple vegetable soup.",
  "recipeIngredient": ["2 carrots, chopped", "4 cups vegetable broth"],
  "recipeInstructions": [
    {"@type": "HowToStep", "text": "Chop the carrots into small pieces."},
    {"@type": "HowToStep", "text": "Simmer everything for twenty minutes."}
  ],
  "prepTime": "PT10M",
  "cookTime": "PT20M",
  "recipeYield": "4 servings",
  "recipeCuisine": "American",
  "image": "/images/test-soup.jpg",
  "author": {"@type": "Person", "name": "Jane Doe"},
  "nutrition": {"@type": "NutritionInformation", "calories": "240 calories", "proteinContent": "6 g"},
  "keywords": "soup, vegetables, easy"
}
</script>
</head><body><h1>Welcome</h1></body></html>`

func TestParseJSONLDRecipe(t *testing.T) {
	recipe, err := Parse(soupPage, "https://example.com/recipes/test-soup")
	require.NoError(t, err)
	require.NotNil(t, recipe)

	assert.Equal(t, "Test Soup", recipe.Title)
	assert.Equal(t, "A simple vegetable soup.", recipe.Description)
	assert.Equal(t, []string{"2 carrots, chopped", "4 cups vegetable broth"}, recipe.Ingredients)
	assert.Len(t, recipe.Instructions, 2)

	require.NotNil(t, recipe.PrepTime)
	assert.Equal(t, 10, *recipe.PrepTime)
	require.NotNil(t, recipe.CookTime)
	assert.Equal(t, 20, *recipe.CookTime)
	assert.Nil(t, recipe.TotalTime)
	require.NotNil(t, recipe.Servings)
	assert.Equal(t, 4, *recipe.Servings)

	assert.Equal(t, "American", recipe.Cuisine)
	assert.Equal(t, "Jane Doe", recipe.Author)
	assert.Equal(t, "https://example.com/images/test-soup.jpg", recipe.ImageURL)
	assert.Equal(t, "https://example.com/recipes/test-soup", recipe.SourceURL)
	assert.Equal(t, []string{"soup", "vegetables", "easy"}, recipe.Tags)

	require.NotNil(t, recipe.Nutrition)
	require.NotNil(t, recipe.Nutrition.Calories)
	assert.InDelta(t, 240, *recipe.Nutrition.Calories, 0.0001)
}

func TestParseSkipsMalformedJSONLDBlock(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{not valid json</script>
<script type="application/ld+json">
{"@type": "Recipe", "name": "Backup Stew",
 "recipeIngredient": ["1 lb beef", "2 onions"],
 "recipeInstructions": "Brown the beef in a pot.\nAdd onions and stew for an hour."}
</script>
</head></html>`

	recipe, err := Parse(page, "")
	require.NoError(t, err)
	assert.Equal(t, "Backup Stew", recipe.Title)
	assert.Len(t, recipe.Instructions, 2)
}

func TestParseFindsRecipeInGraph(t *testing.T) {
	page := `<script type="application/ld+json">
{"@context": "https://schema.org", "@graph": [
  {"@type": "WebSite", "name": "Some Food Blog"},
  {"@type": ["Recipe", "CreativeWork"], "name": "Graph Curry",
   "recipeIngredient": ["1 can coconut milk", "2 tbsp curry paste"],
   "recipeInstructions": [{"@type": "HowToStep", "text": "Simmer the paste in coconut milk."}]}
]}
</script>`

	recipe, err := Parse(page, "")
	require.NoError(t, err)
	assert.Equal(t, "Graph Curry", recipe.Title)
}

func TestParseValidationErrorListsMissingFields(t *testing.T) {
	_, err := Parse("<html><body><p>Nothing to see here.</p></body></html>", "")
	require.Error(t, err)

	var ve *common.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "ingredients")
	assert.Contains(t, ve.Fields, "instructions")
	assert.True(t, common.IsValidationError(err))
	assert.False(t, common.IsFetchError(err))
}

func TestParseStructuredDataWinsOverMicrodata(t *testing.T) {
	page := `<html>
<script type="application/ld+json">
{"@type": "Recipe", "name": "Structured Title",
 "recipeIngredient": ["1 cup rice"],
 "recipeInstructions": "Cook the rice until tender."}
</script>
<div itemscope itemtype="https://schema.org/Recipe">
  <span itemprop="name">Microdata Title</span>
  <li itemprop="recipeIngredient">2 cups water</li>
</div>
</html>`

	recipe, err := Parse(page, "")
	require.NoError(t, err)
	// 高優先階段已填的欄位不得被低優先階段覆寫
	assert.Equal(t, "Structured Title", recipe.Title)
	assert.Equal(t, []string{"1 cup rice"}, recipe.Ingredients)
}

func TestParseMicrodataFallback(t *testing.T) {
	page := `<div itemscope itemtype="https://schema.org/Recipe">
  <h2 itemprop="name">Microdata Pasta</h2>
  <li itemprop="recipeIngredient">200g spaghetti</li>
  <li itemprop="recipeIngredient">2 cloves garlic</li>
  <p itemprop="recipeInstructions">Boil the spaghetti until al dente.</p>
</div>`

	recipe, err := Parse(page, "")
	require.NoError(t, err)
	assert.Equal(t, "Microdata Pasta", recipe.Title)
	assert.Len(t, recipe.Ingredients, 2)
}

func TestParseGenericFallback(t *testing.T) {
	page := `<html><head><title>Fallback Tacos - My Blog</title>
<meta property="og:image" content="https://example.com/tacos.jpg">
</head><body>
<li class="recipe-ingredient">8 corn tortillas</li>
<li class="recipe-ingredient">1 lb ground beef</li>
<p class="instruction-step">Brown the beef with the spices.</p>
<p class="instruction-step">Warm the tortillas and assemble.</p>
</body></html>`

	recipe, err := Parse(page, "")
	require.NoError(t, err)
	assert.Equal(t, "Fallback Tacos", recipe.Title)
	assert.Len(t, recipe.Ingredients, 2)
	assert.Len(t, recipe.Instructions, 2)
	assert.Equal(t, "https://example.com/tacos.jpg", recipe.ImageURL)
}

func TestParseWithSiteRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(`example\.org/kitchen/`, func(html, sourceURL string) *Draft {
		return &Draft{
			Title:        "Site Specific Pie",
			Ingredients:  []string{"3 apples", "1 pie crust"},
			Instructions: []string{"Fill the crust with sliced apples and bake."},
		}
	}))

	recipe, err := ParseWithRegistry("<html></html>", "https://example.org/kitchen/pie", registry)
	require.NoError(t, err)
	assert.Equal(t, "Site Specific Pie", recipe.Title)
}

func TestSiteExtractorPanicIsContained(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(`example\.org/`, func(html, sourceURL string) *Draft {
		panic("extractor bug")
	}))

	// panic 只讓該階段無結果，不往上冒
	draft := registry.Extract("<html></html>", "https://example.org/broken")
	assert.Nil(t, draft)

	_, err := ParseWithRegistry("<html></html>", "https://example.org/broken", registry)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestValidateFiltersShortEntries(t *testing.T) {
	draft := &Draft{
		Title:        "Filter Check",
		Ingredients:  []string{"ab", "egg", "2 cups flour"},
		Instructions: []string{"Stir.", "Mix everything together well."},
	}

	recipe, err := Validate(draft)
	require.NoError(t, err)
	// 食材長度須大於 2，步驟長度須大於 10
	assert.Equal(t, []string{"egg", "2 cups flour"}, recipe.Ingredients)
	assert.Equal(t, []string{"Mix everything together well."}, recipe.Instructions)
}

func TestMergeDraftsFirstNonEmptyWins(t *testing.T) {
	prep := 5
	merged := mergeDrafts(
		&Draft{Title: "First", PrepTime: &prep},
		nil,
		&Draft{Title: "Second", Description: "from second", Cuisine: "Thai"},
	)

	assert.Equal(t, "First", merged.Title)
	assert.Equal(t, "from second", merged.Description)
	assert.Equal(t, "Thai", merged.Cuisine)
	require.NotNil(t, merged.PrepTime)
	assert.Equal(t, 5, *merged.PrepTime)
}
