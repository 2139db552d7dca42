package state

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFile(t *testing.T) {
	r := newTestRepo(t)
	require.NoError(t, r.AddFile("x.txt"))
	assert.True(t, r.InWorking("x.txt"))
	assert.Equal(t, FileUntracked, r.FileStatuses()["x.txt"])

	assert.ErrorIs(t, r.AddFile("x.txt"), ErrFileExists)

	commitFile(t, r, "x.txt", "add x")
	assert.ErrorIs(t, r.AddFile("x.txt"), ErrFileExists, "committed names count as existing")
}

func TestRenameFile(t *testing.T) {
	t.Run("working file", func(t *testing.T) {
		r := newTestRepo(t)
		require.NoError(t, r.WriteFile("x.txt", "hello", false))
		require.NoError(t, r.RenameFile("x.txt", "y.txt"))

		assert.Contains(t, r.ListFiles(), "y.txt")
		assert.NotContains(t, r.ListFiles(), "x.txt")
		content, err := r.ReadFile("y.txt")
		require.NoError(t, err)
		assert.Equal(t, "hello", content)
	})

	t.Run("staged file stays staged", func(t *testing.T) {
		r := newTestRepo(t)
		require.NoError(t, r.Stage("README.md"))
		require.NoError(t, r.RenameFile("README.md", "DOCS.md"))
		assert.Equal(t, []string{"DOCS.md"}, r.Staged())
		assert.NotContains(t, r.Working(), "DOCS.md")
	})

	t.Run("clean tracked file keeps its content", func(t *testing.T) {
		r := newTestRepo(t)
		commitFile(t, r, "README.md", "init")
		before, err := r.ReadFile("README.md")
		require.NoError(t, err)

		require.NoError(t, r.RenameFile("README.md", "DOCS.md"))
		assert.Equal(t, FileClean, r.FileStatuses()["README.md"])
		after, err := r.ReadFile("README.md")
		require.NoError(t, err)
		assert.Equal(t, before, after)
		moved, err := r.ReadFile("DOCS.md")
		require.NoError(t, err)
		assert.Equal(t, before, moved)
	})

	t.Run("errors", func(t *testing.T) {
		r := newTestRepo(t)
		assert.ErrorIs(t, r.RenameFile("ghost", "y"), ErrFileNotFound)
		assert.ErrorIs(t, r.RenameFile("README.md", "app.js"), ErrFileExists)
		assert.ErrorIs(t, r.RenameFile("README.md", "docs/"), ErrInvalidFileName)
	})
}

func TestValidFileName(t *testing.T) {
	for name, want := range map[string]bool{
		"notes.txt":   true,
		"src/main.go": true,
		"":            false,
		".":           false,
		"/":           false,
		"..":          false,
		"a/":          false,
		"./":          false,
	} {
		assert.Equal(t, want, ValidFileName(name), name)
	}

	r := newTestRepo(t)
	assert.ErrorIs(t, r.AddFile("."), ErrInvalidFileName)
	assert.ErrorIs(t, r.AddFile("a/"), ErrInvalidFileName)
	assert.ErrorIs(t, r.WriteFile(".", "hi", false), ErrInvalidFileName)
	assert.NotContains(t, r.ListFiles(), "a/")
}

func TestStageAndUnstage(t *testing.T) {
	r := newTestRepo(t)
	assert.ErrorIs(t, r.Stage("ghost"), ErrFileNotFound)

	require.NoError(t, r.Stage("README.md"))
	require.NoError(t, r.Stage("README.md"))
	assert.Equal(t, []string{"README.md"}, r.Staged())
	assert.Equal(t, []string{"app.js"}, r.Working())

	require.NoError(t, r.Unstage("README.md"))
	assert.Empty(t, r.Staged())
	assert.ElementsMatch(t, []string{"README.md", "app.js"}, r.Working())
	assert.Empty(t, r.Modified(), "never-committed file comes back untracked")
	assert.ErrorIs(t, r.Unstage("README.md"), ErrFileNotFound)

	moved := r.StageAll()
	assert.ElementsMatch(t, []string{"README.md", "app.js"}, moved)
	assert.Empty(t, r.Working())
}

func TestWriteFile_TrackedBecomesModified(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "README.md", "first")
	assert.Equal(t, FileClean, r.FileStatuses()["README.md"])

	require.NoError(t, r.WriteFile("README.md", "\nmore", true))
	assert.True(t, r.IsModified("README.md"))
	assert.Equal(t, FileModified, r.FileStatuses()["README.md"])

	content, err := r.ReadFile("README.md")
	require.NoError(t, err)
	assert.Equal(t, "# My Project\n\nA short description of this project.\nmore", content)

	require.NoError(t, r.WriteFile("README.md", "again", false))
	assert.Equal(t, []string{"README.md"}, r.Modified(), "no duplicate entries")

	assert.Equal(t, []string{"README.md"}, r.StageModified())
	assert.Equal(t, FileStaged, r.FileStatuses()["README.md"])

	require.NoError(t, r.Unstage("README.md"))
	assert.True(t, r.IsModified("README.md"), "tracked file comes back modified")
}

func TestDeleteAndRemoveTracked(t *testing.T) {
	r := newTestRepo(t)
	assert.ErrorIs(t, r.DeleteFile("ghost"), ErrFileNotFound)
	require.NoError(t, r.DeleteFile("app.js"))
	assert.False(t, r.FileExists("app.js"))
	_, err := r.ReadFile("app.js")
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.ErrorIs(t, r.RemoveTracked("README.md"), ErrFileNotTracked)
	commitFile(t, r, "README.md", "first")
	require.NoError(t, r.WriteFile("README.md", "edit", false))
	require.NoError(t, r.RemoveTracked("README.md"))
	assert.Empty(t, r.Working())
	assert.Empty(t, r.Modified())
	assert.ErrorIs(t, r.RemoveTracked("ghost"), ErrFileNotFound)
}

func TestAllFiles(t *testing.T) {
	r := newTestRepo(t)
	commitFile(t, r, "README.md", "first")
	require.NoError(t, r.AddFile("b.txt"))
	assert.Equal(t, []string{"README.md", "app.js", "b.txt"}, r.AllFiles())
}

// Random operation sequences must never leave a name both working and staged,
// and modified files must always be in the working set.
func TestFileSetInvariants(t *testing.T) {
	names := []string{"README.md", "app.js", "a.txt", "b.txt", "c.txt"}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 20; run++ {
		r := newTestRepo(t)
		for step := 0; step < 200; step++ {
			name := names[rng.Intn(len(names))]
			other := names[rng.Intn(len(names))]
			switch rng.Intn(10) {
			case 0:
				_ = r.AddFile(name)
			case 1:
				_ = r.Stage(name)
			case 2:
				r.StageAll()
			case 3:
				_ = r.Unstage(name)
			case 4:
				_ = r.WriteFile(name, "x", rng.Intn(2) == 0)
			case 5:
				_ = r.RenameFile(name, other)
			case 6:
				_ = r.DeleteFile(name)
			case 7:
				_ = r.RemoveTracked(name)
			case 8:
				_, _ = r.RecordCommit("step", testAuthor)
			case 9:
				r.StageModified()
			}

			for _, w := range r.Working() {
				require.False(t, r.IsStaged(w), "run %d step %d: %s in working and staged", run, step, w)
			}
			for _, m := range r.Modified() {
				require.True(t, r.InWorking(m), "run %d step %d: modified %s not in working", run, step, m)
			}
			require.Len(t, r.ListFiles(), len(r.Working())+len(r.Staged()))
		}
	}
}
