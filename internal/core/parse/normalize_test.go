package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "2 cups flour", "2 cups flour"},
		{"strips tags", "<b>2 cups</b> flour", "2 cups flour"},
		{"tag becomes separator", "flour<br>sugar", "flour sugar"},
		{"decodes entities", "salt &amp; pepper&nbsp;mix", "salt & pepper mix"},
		{"decodes quotes", "&quot;secret&quot; sauce &#39;mild&#39;", `"secret" sauce 'mild'`},
		{"collapses whitespace", "  2   cups \n\t flour  ", "2 cups flour"},
		{"empty input", "", ""},
		{"only markup", "<div><span></span></div>", ""},
		{"unknown entity kept", "caf&eacute;", "caf&eacute;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
