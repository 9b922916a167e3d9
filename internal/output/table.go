package output

import "strings"

// FileEntry represents a file in a tree listing.
type FileEntry struct {
	Path        string
	Description string
}

// RenderFileTree renders a file tree with descriptions aligned at alignColumn.
// Entries with empty descriptions are printed without trailing padding.
func RenderFileTree(files []FileEntry, alignColumn int) string {
	var b strings.Builder
	for _, f := range files {
		if f.Description == "" {
			b.WriteString(f.Path)
			b.WriteString("\n")
			continue
		}
		padding := alignColumn - len(f.Path)
		if padding < 1 {
			padding = 1
		}
		b.WriteString(f.Path)
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(StyleDim.Render(f.Description))
		b.WriteString("\n")
	}
	return b.String()
}
