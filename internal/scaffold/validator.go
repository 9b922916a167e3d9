package scaffold

import (
	"fmt"
	"strings"
	"unicode"

	rekerrors "github.com/blockguard-sf/rek/internal/errors"
)

// NormalizeName canonicalizes a user-supplied package name: surrounding
// whitespace is trimmed and the name is lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ValidateName checks that a package name is safe to use as a directory name.
// Names must start with a letter and contain only letters, digits, hyphens,
// and underscores.
func ValidateName(name string) error {
	if name == "" {
		return rekerrors.NewInvalidNameError("package name cannot be empty", "")
	}

	if !unicode.IsLetter(rune(name[0])) {
		return rekerrors.NewInvalidNameError(
			fmt.Sprintf("invalid package name %q: must start with a letter", name), "")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return rekerrors.NewInvalidNameError(
				fmt.Sprintf("invalid package name %q: contains invalid character %q", name, r),
				"Package names may contain letters, digits, hyphens, and underscores.")
		}
	}

	return nil
}

// IsKnownLicense reports whether license is one of the licenses offered by
// the interactive collector.
func IsKnownLicense(license string) bool {
	for _, l := range KnownLicenses {
		if l == license {
			return true
		}
	}
	return false
}
