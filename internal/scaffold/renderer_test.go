package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMetadata() Metadata {
	return Metadata{
		Name:        "widget",
		Description: "A demo",
		Author:      "Jane",
		License:     "MIT",
		GitEnabled:  true,
		Directory:   "/tmp/out",
	}
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "single token",
			content: `["Name"] = "{{name}}",`,
			want:    `["Name"] = "widget",`,
		},
		{
			name:    "all recognized tokens",
			content: "{{name}} {{description}} {{author}} {{license}} {{version}}",
			want:    "widget A demo Jane MIT 1.0.0",
		},
		{
			name:    "repository token derives from author and name",
			content: "{{repository}}",
			want:    "https://github.com/Jane/widget",
		},
		{
			name:    "token with inner whitespace",
			content: "{{ name }}",
			want:    "widget",
		},
		{
			name:    "repeated token replaced at every occurrence",
			content: "{{name}}-{{name}}",
			want:    "widget-widget",
		},
		{
			name:    "no tokens is a no-op",
			content: "return Module",
			want:    "return Module",
		},
	}

	r := NewRenderer(testMetadata())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, unknown := r.Render([]byte(tt.content))
			assert.Equal(t, tt.want, string(rendered))
			assert.Empty(t, unknown)
		})
	}
}

func TestRenderer_UnrecognizedTokensLeftUntouched(t *testing.T) {
	r := NewRenderer(testMetadata())

	rendered, unknown := r.Render([]byte("{{name}} {{bogus}} {{bogus}} {{other}}"))

	assert.Equal(t, "widget {{bogus}} {{bogus}} {{other}}", string(rendered))
	assert.Equal(t, []string{"bogus", "other"}, unknown)
}

func TestRenderer_RenderPath(t *testing.T) {
	r := NewRenderer(testMetadata())

	assert.Equal(t, "src/widget/Metadata.luau", r.RenderPath("src/{{name}}/Metadata.luau"))
	assert.Equal(t, "README.md", r.RenderPath("README.md"))
}

func TestRenderer_CatalogTemplatesFullyResolve(t *testing.T) {
	// Every templated catalog entry must render without leftover recognized
	// or unrecognized tokens for complete metadata.
	r := NewRenderer(testMetadata())

	for _, entry := range Catalog() {
		if entry.Kind != KindTemplated {
			continue
		}
		content, err := entry.Content()
		require.NoError(t, err)

		rendered, unknown := r.Render(content)
		assert.Empty(t, unknown, "entry %s references unknown tokens", entry.Path)
		assert.NotContains(t, string(rendered), "{{", "entry %s left tokens behind", entry.Path)
	}
}
