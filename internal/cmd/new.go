package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	rekerrors "github.com/blockguard-sf/rek/internal/errors"
	"github.com/blockguard-sf/rek/internal/scaffold"
)

var (
	newDescription string
	newAuthor      string
	newLicense     string
	newGit         bool
	newDir         string
)

// NewNewCmd creates the non-interactive `new` command.
func NewNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new package without prompts",
		Long: `Create a new RoLib package scaffold from flags instead of the
interactive prompt sequence.

Examples:
  # Create a package in the current directory
  rek new mylib --description "A demo" --author "Jane Doe"

  # Create a package in a specific directory without a git repository
  rek new mylib --dir /srv/packages --git=false`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVar(&newDescription, "description", "", "package description")
	cmd.Flags().StringVar(&newAuthor, "author", "", "package author (default from config)")
	cmd.Flags().StringVar(&newLicense, "license", "",
		fmt.Sprintf("package license (%s, or any custom string)", strings.Join(scaffold.KnownLicenses, ", ")))
	cmd.Flags().BoolVar(&newGit, "git", true, "initialize a git repository after generation")
	cmd.Flags().StringVar(&newDir, "dir", "", "target directory, created if missing (default from config)")

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	name := scaffold.NormalizeName(args[0])
	if err := scaffold.ValidateName(name); err != nil {
		return err
	}

	author := newAuthor
	if !cmd.Flags().Changed("author") {
		author = cfg.Author
	}
	license := newLicense
	if !cmd.Flags().Changed("license") {
		license = cfg.License
	}
	gitEnabled := newGit
	if !cmd.Flags().Changed("git") {
		gitEnabled = cfg.Git
	}
	dir := newDir
	if !cmd.Flags().Changed("dir") {
		dir = cfg.Directory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return rekerrors.NewInvalidInputError(
			fmt.Sprintf("invalid target directory %q: %v", dir, err), "")
	}
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return fmt.Errorf("%s: %w: %w", absDir, rekerrors.ErrIO, err)
	}

	return RunGenerate(cmd.Context(), scaffold.Metadata{
		Name:        name,
		Description: newDescription,
		Author:      author,
		License:     license,
		GitEnabled:  gitEnabled,
		Directory:   absDir,
	})
}
