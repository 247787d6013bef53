package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileBackend_RoundTrip(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	assert.NoError(t, err)

	_, err = backend.Load("missing")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, backend.Store("nutrisnap_meal_log", []byte(`{"version":1}`)))

	data, err := backend.Load("nutrisnap_meal_log")
	assert.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))
}

func TestFileBackend_Overwrite(t *testing.T) {
	backend, err := NewFileBackend(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, backend.Store("key", []byte("first")))
	assert.NoError(t, backend.Store("key", []byte("second")))

	data, err := backend.Load("key")
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSQLBackend_RoundTrip(t *testing.T) {
	backend, err := NewSQLBackend(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	defer backend.Close()

	_, err = backend.Load("missing")
	assert.Equal(t, ErrNotFound, err)

	assert.NoError(t, backend.Store("nutrisnap_user_settings", []byte(`{"version":1}`)))

	data, err := backend.Load("nutrisnap_user_settings")
	assert.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(data))
}

func TestSQLBackend_Overwrite(t *testing.T) {
	backend, err := NewSQLBackend(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, err)
	defer backend.Close()

	assert.NoError(t, backend.Store("key", []byte("first")))
	assert.NoError(t, backend.Store("key", []byte("second")))

	data, err := backend.Load("key")
	assert.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
