package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/kthaib/aqari-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("lease.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	assert.Contains(t, stored, "lease.pdf")

	rc, err := store.Open(stored)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, store.Delete(stored))
	_, err = store.Open(stored)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// deleting again is a no-op
	assert.NoError(t, store.Delete(stored))
}

func TestSaveSameNameNeverCollides(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	// Same client name in the same second must yield distinct stored
	// names, and both documents must read back byte-identical.
	first, err := store.Save("contract.pdf", strings.NewReader("document A"))
	require.NoError(t, err)
	second, err := store.Save("contract.pdf", strings.NewReader("document B"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	rc, err := store.Open(first)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "document A", string(data))

	rc, err = store.Open(second)
	require.NoError(t, err)
	data, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "document B", string(data))
}

func TestSaveStripsPath(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotContains(t, stored, "..")
	assert.Contains(t, stored, "passwd")
}

func TestOpenRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open("..")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
