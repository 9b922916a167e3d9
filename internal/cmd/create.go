package cmd

import (
	"context"
	"fmt"

	rekerrors "github.com/blockguard-sf/rek/internal/errors"
	"github.com/blockguard-sf/rek/internal/output"
	"github.com/blockguard-sf/rek/internal/scaffold"
	"github.com/blockguard-sf/rek/internal/vcs"
)

// fileTreeAlignColumn is where file descriptions line up in the success output.
const fileTreeAlignColumn = 34

// RunGenerate executes one generation run for validated metadata: it
// materializes the scaffold, prints the created tree, and, when requested,
// initializes a repository at the root. A repository-initialization failure
// degrades to a warning; the scaffold is still a success.
func RunGenerate(ctx context.Context, meta scaffold.Metadata) error {
	result, err := scaffold.NewGenerator(meta).Generate()
	if err != nil {
		return err
	}

	output.Println(fmt.Sprintf("Created package '%s' in %s\n",
		output.StyleNoun.Render(meta.Name), meta.Directory))

	entries := make([]output.FileEntry, 0, len(result.Entries)+1)
	entries = append(entries, output.FileEntry{
		Path:        meta.Name + "/",
		Description: "Package root",
	})
	for _, e := range result.Entries {
		path := "  " + e.Path
		if e.Dir {
			path += "/"
		}
		entries = append(entries, output.FileEntry{Path: path, Description: e.Description})
	}
	output.Print(output.RenderFileTree(entries, fileTreeAlignColumn))

	if !meta.GitEnabled {
		return nil
	}

	err = output.RunWithSpinner(ctx, "Initializing repository...", func() error {
		return vcs.Init(result.Root, meta.Author)
	})
	if err != nil {
		// Non-fatal: the scaffold is complete, only the repository is missing.
		output.Warn(rekerrors.ErrVCSInit.Error(), "root", result.Root, "err", err)
		return nil
	}

	output.Println(fmt.Sprintf("\n%s Initialized repository in %s",
		output.Checkmark(), result.Root))
	return nil
}
