package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSpicePriorityFirstMatch(t *testing.T) {
	tests := []struct {
		name        string
		ingredients string
		want        int
	}{
		{"ghost pepper tops the scale", "1 ghost pepper, minced", 5},
		{"habanero also scores five", "2 habanero peppers", 5},
		{"serrano", "1 serrano chili", 4},
		{"jalapeno", "2 jalapenos, sliced", 3},
		{"hot sauce", "a dash of hot sauce", 3},
		{"black pepper", "salt and black pepper to taste", 2},
		{"bell pepper only", "1 red bell pepper", 1},
		{"no heat", "2 cups flour, 1 cup sugar", 0},
		// 優先序首命中：同時出現時取最高級距，不累加
		{"ghost pepper beats jalapeno", "ghost pepper and jalapeno salsa", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreSpice(tt.ingredients))
		})
	}
}

func TestScoreAdditiveClampsAtFive(t *testing.T) {
	// 每組最多貢獻一次，總和封頂 5
	loaded := "butter, heavy cream, bacon, olive oil, mayonnaise"
	assert.Equal(t, 5, scoreAdditive(loaded, fatGroups))

	assert.Equal(t, 2, scoreAdditive("2 tbsp butter", fatGroups))
	assert.Equal(t, 0, scoreAdditive("2 cups water", fatGroups))
}

func TestInferFlavorDimensions(t *testing.T) {
	dims := inferFlavorDimensions("soy sauce, lime juice, sugar, jalapeno")
	require.NotNil(t, dims)

	assert.Equal(t, 3, dims.Spice)
	assert.Equal(t, 2, dims.Acid)
	assert.Equal(t, 2, dims.Umami)
	assert.Equal(t, 2, dims.Sweet)
	assert.Equal(t, 0, dims.Bitter)
	assert.Equal(t, 0, dims.Fat)
}
