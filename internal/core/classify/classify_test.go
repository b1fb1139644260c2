package classify

import (
	"testing"

	"recipe-importer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipe() *common.ParsedRecipe {
	return &common.ParsedRecipe{
		Title:        "Test Soup",
		Description:  "A simple vegetable soup.",
		Ingredients:  []string{"2 carrots, chopped", "1 block tofu", "4 cups water"},
		Instructions: []string{"Chop the carrots.", "Simmer everything for twenty minutes."},
	}
}

func TestClassifyCourse(t *testing.T) {
	tests := []struct {
		name   string
		recipe *common.ParsedRecipe
		want   common.Course
	}{
		{"soup from title", testRecipe(), common.CourseSoup},
		{"explicit course field wins", &common.ParsedRecipe{
			Title:  "Chocolate Thing",
			Course: "Dessert",
		}, common.CourseDessert},
		{"breakfast keyword", &common.ParsedRecipe{
			Title: "Spinach Omelette",
		}, common.CourseBreakfast},
		{"daytime fallback", &common.ParsedRecipe{
			Title:       "Weeknight Chicken",
			Description: "Perfect for a busy weeknight.",
		}, common.CourseDinner},
		{"no signal leaves course absent", &common.ParsedRecipe{
			Title: "Mystery Dish",
		}, common.Course("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.recipe)
			assert.Equal(t, tt.want, got.Course)
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	r := testRecipe()
	first := Classify(r)
	second := Classify(r)
	assert.Equal(t, first, second)
}

func TestClassifyDietaryDerivation(t *testing.T) {
	t.Run("no meat no fish no dairy no egg is vegan", func(t *testing.T) {
		got := Classify(testRecipe())
		assert.Contains(t, got.DietaryTags, common.DietVegetarian)
		assert.Contains(t, got.DietaryTags, common.DietVegan)
	})

	t.Run("dairy blocks vegan but not vegetarian", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients = append(r.Ingredients, "1 cup heavy cream")
		got := Classify(r)
		assert.Contains(t, got.DietaryTags, common.DietVegetarian)
		assert.NotContains(t, got.DietaryTags, common.DietVegan)
	})

	t.Run("fish without meat is pescatarian", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients = append(r.Ingredients, "2 salmon fillets")
		got := Classify(r)
		assert.Contains(t, got.DietaryTags, common.DietPescatarian)
		assert.NotContains(t, got.DietaryTags, common.DietVegetarian)
		assert.NotContains(t, got.DietaryTags, common.DietVegan)
	})

	t.Run("meat yields no derived tag", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients = append(r.Ingredients, "1 lb chicken thighs")
		got := Classify(r)
		assert.NotContains(t, got.DietaryTags, common.DietVegetarian)
		assert.NotContains(t, got.DietaryTags, common.DietPescatarian)
	})

	t.Run("explicit gluten-free mention", func(t *testing.T) {
		r := testRecipe()
		r.Tags = []string{"gluten-free"}
		got := Classify(r)
		assert.Contains(t, got.DietaryTags, common.DietGlutenFree)
	})
}

func TestClassifyCookingMethodsFromInstructionsOnly(t *testing.T) {
	r := &common.ParsedRecipe{
		Title:        "Grilled Something", // 標題不算數，只看步驟
		Ingredients:  []string{"1 lb chicken"},
		Instructions: []string{"Simmer the broth gently.", "Bake in the oven until golden."},
	}
	got := Classify(r)

	assert.Contains(t, got.CookingMethods, common.MethodBoiledSimmered)
	assert.Contains(t, got.CookingMethods, common.MethodRoastedBaked)
	assert.NotContains(t, got.CookingMethods, common.MethodGrilledCharred)
}

func TestClassifyRegions(t *testing.T) {
	t.Run("explicit cuisine field", func(t *testing.T) {
		r := testRecipe()
		r.Cuisine = "Northern Italian"
		got := Classify(r)
		assert.Contains(t, got.Regions, common.RegionItalian)
	})

	t.Run("signature ingredient chain", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients = append(r.Ingredients, "2 tbsp gochujang")
		got := Classify(r)
		assert.Contains(t, got.Regions, common.RegionKorean)
	})

	t.Run("paired indicators required", func(t *testing.T) {
		r := testRecipe()
		r.Ingredients = append(r.Ingredients, "1 stalk lemongrass")
		got := Classify(r)
		// 只有 lemongrass、缺 fish sauce，不足以判定泰式
		assert.NotContains(t, got.Regions, common.RegionThai)

		r.Ingredients = append(r.Ingredients, "2 tbsp fish sauce")
		got = Classify(r)
		assert.Contains(t, got.Regions, common.RegionThai)
	})
}

func TestClassifyContextualTags(t *testing.T) {
	quick := 25
	single := 1
	family := 8

	t.Run("quick when total time within 30 minutes", func(t *testing.T) {
		r := testRecipe()
		r.TotalTime = &quick
		got := Classify(r)
		assert.Contains(t, got.ContextualTags, common.ContextQuick)
	})

	t.Run("family style at six or more servings", func(t *testing.T) {
		r := testRecipe()
		r.Servings = &family
		got := Classify(r)
		assert.Contains(t, got.ContextualTags, common.ContextFamilyStyle)
	})

	t.Run("single serve", func(t *testing.T) {
		r := testRecipe()
		r.Servings = &single
		got := Classify(r)
		assert.Contains(t, got.ContextualTags, common.ContextSingleServe)
	})

	t.Run("one pot from title", func(t *testing.T) {
		r := testRecipe()
		r.Title = "One Pot Test Soup"
		got := Classify(r)
		assert.Contains(t, got.ContextualTags, common.ContextOnePot)
	})

	t.Run("no cook from chilled method", func(t *testing.T) {
		r := testRecipe()
		r.Instructions = []string{"Mix everything and refrigerate until set."}
		got := Classify(r)
		assert.Contains(t, got.ContextualTags, common.ContextNoCook)
	})
}

func TestClassifyIngredientDomain(t *testing.T) {
	tests := []struct {
		name        string
		ingredients []string
		want        common.IngredientDomain
	}{
		{"protein heavy", []string{"1 lb chicken", "2 eggs", "1 block tofu"}, common.DomainProtein},
		{"grain heavy", []string{"2 cups rice", "200g pasta", "1 loaf bread"}, common.DomainGrainStarch},
		{"fruit heavy", []string{"2 apples", "1 banana", "1 cup berries"}, common.DomainFruitBased},
		{"no signal is mixed", []string{"1 tsp salt", "2 tbsp oil"}, common.DomainMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &common.ParsedRecipe{
				Title:        "Domain Check",
				Ingredients:  tt.ingredients,
				Instructions: []string{"Combine everything in a bowl."},
			}
			got := Classify(r)
			assert.Equal(t, tt.want, got.IngredientDomain)
		})
	}
}

func TestClassifyDishForm(t *testing.T) {
	r := testRecipe()
	r.Title = "Chicken Taco Night"
	got := Classify(r)
	assert.Equal(t, common.DishFormHandheld, got.DishForm)

	r.Title = "Plain Rice"
	got = Classify(r)
	assert.Equal(t, common.DishForm(""), got.DishForm)
}

func TestClassifyFlavorProfiles(t *testing.T) {
	r := testRecipe()
	r.Ingredients = append(r.Ingredients, "2 tbsp soy sauce", "1 lime, juiced")
	got := Classify(r)

	assert.Contains(t, got.FlavorProfiles, common.FlavorSavoryUmami)
	assert.Contains(t, got.FlavorProfiles, common.FlavorBrightAcidic)
	assert.NotContains(t, got.FlavorProfiles, common.FlavorSpicyHot)

	require.NotNil(t, got.FlavorDimensions)
}
