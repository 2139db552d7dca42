package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMergedHistory creates main: A - B - M and feature: A - F, with M merging F.
func buildMergedHistory(t *testing.T) (r *Repository, a, b, f, m string) {
	t.Helper()
	r = newTestRepo(t)
	a = commitFile(t, r, "README.md", "A").Hash
	require.NoError(t, r.CreateBranch("feature"))
	require.NoError(t, r.SwitchBranch("feature"))
	f = commitFile(t, r, "f.txt", "F").Hash
	require.NoError(t, r.SwitchBranch("main"))
	b = commitFile(t, r, "app.js", "B").Hash
	merge, err := r.RecordMerge("feature", "M", testAuthor)
	require.NoError(t, err)
	return r, a, b, f, merge.Hash
}

func TestReachable(t *testing.T) {
	r, a, b, f, m := buildMergedHistory(t)

	t.Run("follows both merge parents", func(t *testing.T) {
		got := r.Reachable(m)
		assert.Len(t, got, 4)
		for _, h := range []string{a, b, f, m} {
			assert.Contains(t, got, h)
		}
	})

	t.Run("branch tip", func(t *testing.T) {
		got := r.Reachable(f)
		assert.Len(t, got, 2)
		assert.Contains(t, got, a)
		assert.NotContains(t, got, b)
	})

	t.Run("empty start", func(t *testing.T) {
		assert.Empty(t, r.Reachable(""))
		assert.Empty(t, r.Reachable("unknown"))
	})
}

func TestReachable_CycleGuard(t *testing.T) {
	r := newTestRepo(t)
	a := commitFile(t, r, "README.md", "A").Hash
	b := commitFile(t, r, "app.js", "B").Hash

	// Corrupt the graph so A points back at B.
	r.commitIndex[a].Parents = []string{b}

	got := r.Reachable(b)
	assert.Len(t, got, 2)
	assert.Len(t, r.History(b, "main"), 2)
}

func TestHistory(t *testing.T) {
	r, a, b, f, m := buildMergedHistory(t)

	main := r.History(m, "main")
	hashes := make([]string, 0, len(main))
	for _, c := range main {
		hashes = append(hashes, c.Hash)
	}
	assert.Equal(t, []string{m, b, a}, hashes, "newest first, only commits recorded on main")

	feature := r.History(f, "feature")
	require.Len(t, feature, 1)
	assert.Equal(t, "F", feature[0].Message)

	assert.Empty(t, r.History("", "main"))
}

func TestIsAncestorAndAheadCount(t *testing.T) {
	r, a, b, f, m := buildMergedHistory(t)

	assert.True(t, r.IsAncestor(a, m))
	assert.True(t, r.IsAncestor(f, m))
	assert.True(t, r.IsAncestor(m, m))
	assert.True(t, r.IsAncestor("", a))
	assert.False(t, r.IsAncestor(b, f))
	assert.False(t, r.IsAncestor(m, a))

	assert.Equal(t, 3, r.AheadCount(m, a))
	assert.Equal(t, 0, r.AheadCount(a, m))
	assert.Equal(t, 4, r.AheadCount(m, ""))
}
