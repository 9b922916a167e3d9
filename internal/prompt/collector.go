// Package prompt implements the interactive metadata collector.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/blockguard-sf/rek/internal/config"
	"github.com/blockguard-sf/rek/internal/scaffold"
)

// customLicense is the select option that unlocks the free-text license input.
const customLicense = "custom"

// Collect drives the interactive prompt sequence and returns a validated
// metadata record. Validation runs inside the prompt loop, so invalid input
// is re-entered by the user rather than surfaced as a generation failure.
func Collect(defaults *config.Config) (scaffold.Metadata, error) {
	var (
		name        string
		description string
		author      = defaults.Author
		license     = defaults.License
		gitEnabled  = defaults.Git
		directory   = defaults.Directory
	)
	if !scaffold.IsKnownLicense(license) {
		license = "MIT"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Description("Package name; becomes the scaffold directory name.").
				Validate(validateName).
				Value(&name),
			huh.NewInput().
				Title("Description").
				Value(&description),
			huh.NewInput().
				Title("Author").
				Value(&author),
			huh.NewSelect[string]().
				Title("License").
				Options(huh.NewOptions(licenseChoices()...)...).
				Value(&license),
			huh.NewConfirm().
				Title("Initialize a git repository?").
				Value(&gitEnabled),
			huh.NewInput().
				Title("Package directory").
				Validate(validateDirectory).
				Value(&directory),
		),
	)

	if err := form.Run(); err != nil {
		return scaffold.Metadata{}, fmt.Errorf("collecting package metadata: %w", err)
	}

	if license == customLicense {
		if err := huh.NewInput().
			Title("Custom license").
			Validate(validateNonEmpty).
			Value(&license).
			Run(); err != nil {
			return scaffold.Metadata{}, fmt.Errorf("collecting custom license: %w", err)
		}
	}

	absDir, err := filepath.Abs(directory)
	if err != nil {
		return scaffold.Metadata{}, fmt.Errorf("resolving package directory: %w", err)
	}

	return scaffold.Metadata{
		Name:        scaffold.NormalizeName(name),
		Description: description,
		Author:      author,
		License:     license,
		GitEnabled:  gitEnabled,
		Directory:   absDir,
	}, nil
}

// licenseChoices returns the select options: the known licenses plus the
// custom escape hatch.
func licenseChoices() []string {
	choices := make([]string, 0, len(scaffold.KnownLicenses)+1)
	choices = append(choices, scaffold.KnownLicenses...)
	return append(choices, customLicense)
}

// validateName checks a prompt answer against the package name rules,
// after normalization.
func validateName(name string) error {
	return scaffold.ValidateName(scaffold.NormalizeName(name))
}

// validateDirectory requires an existing directory, matching the original
// collector: the scaffold root is created inside it, never the directory
// itself.
func validateDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory cannot be empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid directory: %v", err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", abs)
	}
	if err != nil {
		return fmt.Errorf("checking directory: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", abs)
	}

	return nil
}

func validateNonEmpty(value string) error {
	if value == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}
