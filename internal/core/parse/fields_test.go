package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"minutes only", "PT30M", intPtr(30)},
		{"hours only", "PT2H", intPtr(120)},
		{"hours and minutes", "PT1H30M", intPtr(90)},
		{"zero hours", "PT0H45M", intPtr(45)},
		{"lowercase", "pt15m", intPtr(15)},
		{"surrounding whitespace", "  PT10M  ", intPtr(10)},
		{"empty", "", nil},
		{"free text", "45 minutes", nil},
		{"bare prefix", "PT", nil},
		{"seconds only unsupported", "PT30S", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.input)
			if tt.want == nil {
				// 缺值必須是 nil，不能是 0
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestParseNutritionValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"calories with unit", "240 calories", floatPtr(240)},
		{"grams", "12g", floatPtr(12)},
		{"decimal", "3.5 g", floatPtr(3.5)},
		{"bare number", "88", floatPtr(88)},
		{"empty", "", nil},
		{"no digits", "trace amounts", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseNutritionValue(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 0.0001)
		})
	}
}

func TestCoerceInstructions(t *testing.T) {
	t.Run("single string split on newlines", func(t *testing.T) {
		got := CoerceInstructions("Chop the onions.\n\nSimmer for 20 minutes.")
		assert.Equal(t, []string{"Chop the onions.", "Simmer for 20 minutes."}, got)
	})

	t.Run("string array", func(t *testing.T) {
		got := CoerceInstructions([]interface{}{"Boil water.", "Add pasta."})
		assert.Equal(t, []string{"Boil water.", "Add pasta."}, got)
	})

	t.Run("step objects prefer text over name", func(t *testing.T) {
		got := CoerceInstructions([]interface{}{
			map[string]interface{}{"@type": "HowToStep", "name": "Prep", "text": "Dice the carrots."},
			map[string]interface{}{"@type": "HowToStep", "name": "Serve warm."},
		})
		assert.Equal(t, []string{"Dice the carrots.", "Serve warm."}, got)
	})

	t.Run("drops entries that clean to empty", func(t *testing.T) {
		got := CoerceInstructions([]interface{}{"  ", "<p></p>", "Stir well."})
		assert.Equal(t, []string{"Stir well."}, got)
	})

	t.Run("unsupported shape yields nothing", func(t *testing.T) {
		assert.Empty(t, CoerceInstructions(42))
	})
}

func TestAbsolutizeImageURL(t *testing.T) {
	tests := []struct {
		name   string
		image  string
		source string
		want   string
	}{
		{"relative path", "/img/soup.jpg", "https://example.com/recipes/soup", "https://example.com/img/soup.jpg"},
		{"already absolute", "https://cdn.example.com/soup.jpg", "https://example.com/recipes/soup", "https://cdn.example.com/soup.jpg"},
		{"protocol relative", "//cdn.example.com/soup.jpg", "https://example.com/recipes/soup", "https://cdn.example.com/soup.jpg"},
		{"missing source keeps original", "/img/soup.jpg", "", "/img/soup.jpg"},
		{"missing image stays empty", "", "https://example.com", ""},
		{"unparseable source keeps original", "/img/soup.jpg", "://bad", "/img/soup.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsolutizeImageURL(tt.image, tt.source))
		})
	}
}

func TestExtractServings(t *testing.T) {
	assert.Equal(t, 4, *extractServings("4 servings"))
	assert.Equal(t, 6, *extractServings("Serves 6 to 8"))
	assert.Nil(t, extractServings("a crowd"))
	assert.Nil(t, extractServings(""))
}

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
