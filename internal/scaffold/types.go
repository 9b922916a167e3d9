// Package scaffold provides the template engine behind rek's package generation.
package scaffold

// PackageVersion is the version written into every generated manifest.
const PackageVersion = "1.0.0"

// Metadata is the package metadata record consumed by the generator.
// It is constructed once per run, after validation, and never mutated.
type Metadata struct {
	// Name is the package name; also the scaffold root directory name.
	Name string

	// Description is a short free-text summary. May be empty.
	Description string

	// Author is the package author. May be empty.
	Author string

	// License is one of KnownLicenses or a custom string.
	License string

	// GitEnabled triggers repository initialization after generation.
	GitEnabled bool

	// Directory is the existing target directory the scaffold root is created in.
	Directory string
}

// KnownLicenses are the licenses offered by the interactive collector.
// Any other non-empty string is accepted as a custom license.
var KnownLicenses = []string{"MIT", "Apache-2.0", "GPL-3.0", "none"}

// EntryKind distinguishes catalog entry types.
type EntryKind int

const (
	// KindDir creates an empty directory.
	KindDir EntryKind = iota

	// KindStatic copies an embedded file verbatim.
	KindStatic

	// KindTemplated copies an embedded file with placeholder tokens resolved.
	KindTemplated
)

// Entry is one element of the compiled scaffold catalog.
// The catalog is data: no entry executes code, and resolution is pure
// text substitution.
type Entry struct {
	// Path is the destination path relative to the scaffold root.
	// Segments may contain placeholder tokens, e.g. "src/{{name}}".
	Path string

	// Source is the file name under the embedded templates directory.
	// Empty for directory entries.
	Source string

	// Kind selects how the entry is materialized.
	Kind EntryKind

	// GitOnly entries are generated only when Metadata.GitEnabled is set.
	GitOnly bool

	// Description is shown in the post-generation file listing.
	Description string
}

// GeneratedEntry is one materialized catalog entry.
type GeneratedEntry struct {
	// Path is the created path relative to the scaffold root.
	Path string

	// Dir reports whether the entry is a directory.
	Dir bool

	// Description is copied from the catalog entry.
	Description string
}

// Result is the outcome of a successful generation run.
type Result struct {
	// Root is the absolute path of the generated tree.
	Root string

	// Entries lists everything created, in creation order.
	Entries []GeneratedEntry
}
