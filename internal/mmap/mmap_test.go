package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rlepack/errs"
)

func TestCreateThenOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")

	w, err := Create(path, 6)
	require.NoError(t, err)
	require.Equal(t, uint64(6), w.Size())
	copy(w.Bytes(), "packed")
	require.NoError(t, w.Close())

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, []byte("packed"), r.Bytes())
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestCreateExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Create(path, 4)
	require.ErrorIs(t, err, errs.ErrIO)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	defer r.Close()
	assert.Zero(t, r.Size())
}

func TestCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice")
	w, err := Create(path, 1)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
