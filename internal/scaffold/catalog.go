package scaffold

import (
	"embed"
	"fmt"
)

//go:embed templates
var templateFS embed.FS

// catalog is the compiled scaffold catalog, in generation order.
// Directories must be listed before any entry nested under them; the
// Catalog test enforces this.
var catalog = []Entry{
	{
		Path:        "src/{{name}}",
		Kind:        KindDir,
		Description: "Package source directory",
	},
	{
		Path:        "src/{{name}}/out",
		Kind:        KindDir,
		Description: "Compiled output modules",
	},
	{
		Path:        "src/{{name}}/Metadata.luau",
		Source:      "metadata.luau.tmpl",
		Kind:        KindTemplated,
		Description: "Package manifest",
	},
	{
		Path:        "src/{{name}}/License.luau",
		Source:      "license.luau.tmpl",
		Kind:        KindTemplated,
		Description: "License stub",
	},
	{
		Path:        "src/{{name}}/out/index.luau",
		Source:      "index.luau",
		Kind:        KindStatic,
		Description: "Entry-point module",
	},
	{
		Path:        "README.md",
		Source:      "readme.md.tmpl",
		Kind:        KindTemplated,
		GitOnly:     true,
		Description: "Project readme",
	},
	{
		Path:        ".gitignore",
		Source:      "gitignore",
		Kind:        KindStatic,
		GitOnly:     true,
		Description: "Git ignore rules",
	},
}

// Catalog returns the compiled scaffold catalog in stable generation order.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Content returns the embedded template content for a file entry.
func (e Entry) Content() ([]byte, error) {
	if e.Kind == KindDir {
		return nil, fmt.Errorf("catalog entry %s is a directory", e.Path)
	}
	content, err := templateFS.ReadFile("templates/" + e.Source)
	if err != nil {
		return nil, fmt.Errorf("reading embedded template %s: %w", e.Source, err)
	}
	return content, nil
}
