package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")

	names := []string{"alice", "bob", "carol"}
	for _, name := range names {
		require.NoError(t, Append(path, Record{"name": name}))
	}

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, len(names))

	for i, name := range names {
		assert.Equal(t, name, records[i]["name"], "records must keep append order")
		assert.NotEmpty(t, records[i]["id"])
		assert.NotEmpty(t, records[i]["saved_at"])
	}
}

func TestAppendCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "candidates.json")

	require.NoError(t, Append(path, Record{"name": "dave"}))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestAppendTreatsCorruptFileAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	require.NoError(t, Append(path, Record{"name": "erin"}))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "erin", records[0]["name"])
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")

	record := Record{"name": "frank"}
	require.NoError(t, Append(path, record))

	assert.NotContains(t, record, "id")
	assert.NotContains(t, record, "saved_at")
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	records, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppendPrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.json")
	require.NoError(t, Append(path, Record{"name": "grace"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  ")
}
