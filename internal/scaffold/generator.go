package scaffold

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	rekerrors "github.com/blockguard-sf/rek/internal/errors"
	"github.com/blockguard-sf/rek/internal/output"
)

// Generator materializes the scaffold catalog for one metadata record.
type Generator struct {
	fs   afero.Fs
	meta Metadata
}

// NewGenerator creates a generator writing to the real filesystem.
func NewGenerator(meta Metadata) *Generator {
	return NewGeneratorFS(afero.NewOsFs(), meta)
}

// NewGeneratorFS creates a generator writing to the given filesystem.
func NewGeneratorFS(fs afero.Fs, meta Metadata) *Generator {
	return &Generator{fs: fs, meta: meta}
}

// Generate produces the complete directory tree rooted at Directory/Name.
//
// The root must not exist, or must be an empty directory; otherwise the run
// fails with a destination conflict and touches nothing. Catalog entries are
// processed in catalog order, so output is reproducible for identical
// metadata. On any mid-generation failure the partially written tree is
// rolled back best-effort: the root is removed when this run created it,
// otherwise the entries written so far are removed in reverse order.
func (g *Generator) Generate() (*Result, error) {
	if err := ValidateName(g.meta.Name); err != nil {
		return nil, err
	}

	root := filepath.Join(g.meta.Directory, g.meta.Name)

	createdRoot, err := g.checkRoot(root)
	if err != nil {
		return nil, err
	}

	output.Debug("generating scaffold",
		"name", g.meta.Name,
		"license", g.meta.License,
		"git", g.meta.GitEnabled,
		"root", root)

	if err := g.fs.MkdirAll(root, 0o755); err != nil {
		return nil, g.classify(err, root)
	}

	renderer := NewRenderer(g.meta)

	var created []GeneratedEntry
	for _, entry := range Catalog() {
		if entry.GitOnly && !g.meta.GitEnabled {
			continue
		}

		relPath := renderer.RenderPath(entry.Path)
		dest := filepath.Join(root, relPath)

		if err := g.materialize(entry, renderer, dest); err != nil {
			g.cleanup(root, createdRoot, created)
			return nil, err
		}

		output.Debug("created entry", "path", relPath)
		created = append(created, GeneratedEntry{
			Path:        relPath,
			Dir:         entry.Kind == KindDir,
			Description: entry.Description,
		})
	}

	return &Result{Root: root, Entries: created}, nil
}

// checkRoot verifies the scaffold root is absent or an empty directory.
// It reports whether the root still has to be created.
func (g *Generator) checkRoot(root string) (bool, error) {
	info, err := g.fs.Stat(root)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, g.classify(err, root)
	}

	if !info.IsDir() {
		return false, rekerrors.NewDestinationConflictError(
			fmt.Sprintf("%s already exists and is not a directory", root), root, "")
	}

	entries, err := afero.ReadDir(g.fs, root)
	if err != nil {
		return false, g.classify(err, root)
	}
	if len(entries) > 0 {
		return false, rekerrors.NewDestinationConflictError(
			fmt.Sprintf("directory %s already exists and is not empty", root), root,
			"Choose a different package name or remove the existing directory.")
	}

	return false, nil
}

// materialize writes a single catalog entry to its destination.
func (g *Generator) materialize(entry Entry, renderer *Renderer, dest string) error {
	if entry.Kind == KindDir {
		if err := g.fs.MkdirAll(dest, 0o755); err != nil {
			return g.classify(err, dest)
		}
		return nil
	}

	content, err := entry.Content()
	if err != nil {
		return rekerrors.Wrap(rekerrors.ErrIO, err.Error())
	}

	if entry.Kind == KindTemplated {
		var unknown []string
		content, unknown = renderer.Render(content)
		for _, token := range unknown {
			output.Warn("unrecognized placeholder token left untouched",
				"token", token, "entry", entry.Path)
		}
	}

	if err := afero.WriteFile(g.fs, dest, content, 0o644); err != nil {
		return g.classify(err, dest)
	}
	return nil
}

// cleanup removes what this run wrote, best-effort.
func (g *Generator) cleanup(root string, createdRoot bool, created []GeneratedEntry) {
	if createdRoot {
		if err := g.fs.RemoveAll(root); err != nil {
			output.Warn("cleanup failed", "path", root, "err", err)
		}
		return
	}

	for i := len(created) - 1; i >= 0; i-- {
		path := filepath.Join(root, created[i].Path)
		if err := g.fs.RemoveAll(path); err != nil {
			output.Warn("cleanup failed", "path", path, "err", err)
		}
	}
}

// classify maps a filesystem error to the engine's error taxonomy, keeping
// the underlying cause attached.
func (g *Generator) classify(err error, path string) error {
	sentinel := rekerrors.ErrIO
	if errors.Is(err, iofs.ErrPermission) {
		sentinel = rekerrors.ErrPermission
	}
	return fmt.Errorf("%s: %w: %w", path, sentinel, err)
}
