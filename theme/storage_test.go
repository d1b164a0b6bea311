package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	s := NewMemoryStorage()

	_, ok, err := s.Get("darkMode")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("darkMode", "true"))
	v, ok, err := s.Get("darkMode")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.json")
	s := NewFileStorage(path)

	_, ok, err := s.Get("accentColor")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("accentColor", "#FFD700"))
	require.NoError(t, s.Set("darkMode", "false"))

	v, ok, err := NewFileStorage(path).Get("accentColor")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "#FFD700", v)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	s := NewFileStorage(path)

	_, _, err := s.Get("darkMode")
	assert.Error(t, err)

	assert.Equal(t, DefaultState(), NewStore(s, nil).State())

	require.NoError(t, s.Set("darkMode", "true"))
	v, ok, err := s.Get("darkMode")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)
}
