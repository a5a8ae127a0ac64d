package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"beatforge/models"
)

func newHistory(t *testing.T) *HistoryService {
	t.Helper()
	history, err := NewHistoryService(t.TempDir())
	require.NoError(t, err)
	return history
}

func ids(products []models.Product) []string {
	var out []string
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestHistoryMergeDeduplicatesLastWriteWins(t *testing.T) {
	history := newHistory(t)

	_, err := history.Merge("s1", []models.Product{
		{ID: "A", Title: "A v1"},
		{ID: "B", Title: "B v1"},
	})
	require.NoError(t, err)

	merged, err := history.Merge("s1", []models.Product{
		{ID: "B", Title: "B v2"},
		{ID: "C", Title: "C v1"},
	})
	require.NoError(t, err)

	require.ElementsMatch(t, []string{"A", "B", "C"}, ids(merged))

	// Exactly one copy of B, and the most recently merged one wins
	var bCount int
	for _, p := range merged {
		if p.ID == "B" {
			bCount++
			require.Equal(t, "B v2", p.Title)
		}
	}
	require.Equal(t, 1, bCount)
}

func TestHistoryPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewHistoryService(dir)
	require.NoError(t, err)
	_, err = first.Merge("s1", []models.Product{{ID: "A"}})
	require.NoError(t, err)

	second, err := NewHistoryService(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids(second.Load("s1")))
}

func TestHistoryLoadMissingIsEmpty(t *testing.T) {
	history := newHistory(t)
	require.Empty(t, history.Load("never-seen"))
}

func TestHistoryCorruptPayloadTreatedAsEmpty(t *testing.T) {
	dir := t.TempDir()
	history, err := NewHistoryService(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "purchases_s1.json"), []byte("{not json"), 0644))

	require.Empty(t, history.Load("s1"))

	// A merge over the corrupt payload starts fresh instead of failing
	merged, err := history.Merge("s1", []models.Product{{ID: "A"}})
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, ids(merged))
}

func TestHistorySessionsAreIsolated(t *testing.T) {
	history := newHistory(t)

	_, err := history.Merge("s1", []models.Product{{ID: "A"}})
	require.NoError(t, err)

	require.Empty(t, history.Load("s2"))
}
