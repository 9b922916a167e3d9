package prompt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockguard-sf/rek/internal/testutil"
)

func TestValidateName(t *testing.T) {
	// Normalization happens before validation, so mixed case passes.
	assert.NoError(t, validateName("MyLib"))
	assert.NoError(t, validateName("  widget "))
	assert.Error(t, validateName(""))
	assert.Error(t, validateName("my/lib"))
}

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	file := testutil.WriteFile(t, dir, "plain.txt", "x")

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"existing directory", dir, false},
		{"missing directory", filepath.Join(dir, "missing"), true},
		{"file instead of directory", file, true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDirectory(tt.dir)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNonEmpty(t *testing.T) {
	assert.Error(t, validateNonEmpty(""))
	assert.NoError(t, validateNonEmpty("WTFPL"))
}
