package scaffold

import (
	"fmt"
	"regexp"
)

// tokenPattern matches placeholder tokens of the form {{name}}.
var tokenPattern = regexp.MustCompile(`\{\{\s*([a-z_]+)\s*\}\}`)

// Renderer resolves placeholder tokens against a metadata record.
// Resolution is pure text substitution: recognized tokens are replaced,
// unrecognized tokens are left untouched and reported to the caller.
type Renderer struct {
	tokens map[string]string
}

// NewRenderer creates a renderer for the given metadata.
func NewRenderer(meta Metadata) *Renderer {
	return &Renderer{
		tokens: map[string]string{
			"name":        meta.Name,
			"description": meta.Description,
			"author":      meta.Author,
			"license":     meta.License,
			"version":     PackageVersion,
			"repository":  fmt.Sprintf("https://github.com/%s/%s", meta.Author, meta.Name),
		},
	}
}

// Render substitutes every recognized token in content exactly once per
// occurrence. It returns the rendered content and the list of unrecognized
// token names encountered, deduplicated in order of first appearance.
func (r *Renderer) Render(content []byte) ([]byte, []string) {
	var unknown []string
	seen := make(map[string]bool)

	rendered := tokenPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		name := string(tokenPattern.FindSubmatch(match)[1])
		if value, ok := r.tokens[name]; ok {
			return []byte(value)
		}
		if !seen[name] {
			seen[name] = true
			unknown = append(unknown, name)
		}
		return match
	})

	return rendered, unknown
}

// RenderPath substitutes recognized tokens in a catalog path. Unrecognized
// tokens are left untouched; path entries carry no freeform text, so they
// are not reported.
func (r *Renderer) RenderPath(path string) string {
	rendered, _ := r.Render([]byte(path))
	return string(rendered)
}
