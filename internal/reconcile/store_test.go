package reconcile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRegistry(t, `[
		{"full_name": "jane doe", "date_of_birth": "1990-03-04", "license_number": "RN-123", "gender": "F", "valid_until": "2025-01-01", "field_of_practice": "RN"},
		{"full_name": "john roe", "date_of_birth": "1985-07-12", "license_number": "RN-456", "gender": "M", "valid_until": "2026-06-30", "field_of_practice": "RN"}
	]`)

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	// Load order is preserved; tie-breaking depends on it.
	assert.Equal(t, "RN-123", store.All()[0].LicenseNumber)
	assert.Equal(t, "RN-456", store.All()[1].LicenseNumber)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSource))
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeRegistry(t, `{"not": "an array"`)
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataSource))
}

func TestStoreLenNil(t *testing.T) {
	var s *Store
	assert.Equal(t, 0, s.Len())
}
