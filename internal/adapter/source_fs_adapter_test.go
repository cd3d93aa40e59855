package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "score.yaml"), "template: string_quartet\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "child.yaml"), "template: string_quartet\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		for _, forbidden := range []string{nestedDir, filepath.Join(nestedDir, "child.yaml")} {
			assert.Falsef(t, containsPath(visited, forbidden), "Walk() unexpectedly visited %s when recursive is false", forbidden)
		}

		assert.True(t, containsPath(visited, filepath.Join(root, "score.yaml")), "Walk() did not visit top-level file")
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.yaml")
		writeTestFile(t, child, "template: string_quartet\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.True(t, containsPath(visited, child), "Walk() did not visit nested file when recursive")
	})
}

func TestLocalSourceFSAdapter_Find(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	top := filepath.Join(root, "a.yaml")
	alt := filepath.Join(root, "b.yml")
	notes := filepath.Join(root, "notes.txt")
	writeTestFile(t, top, "template: string_quartet\n")
	writeTestFile(t, alt, "template: string_quartet\n")
	writeTestFile(t, notes, "ignored\n")

	nestedDir := filepath.Join(root, "nested")
	mustMkdir(t, nestedDir)
	nested := filepath.Join(nestedDir, "c.yaml")
	writeTestFile(t, nested, "template: string_quartet\n")

	t.Run("directory contributes its spec files only", func(t *testing.T) {
		paths, err := adapter.Find([]m.Path{m.Path(root)})
		require.NoError(t, err)

		assert.ElementsMatch(t, []m.Path{m.Path(top), m.Path(alt)}, paths)
	})

	t.Run("ellipsis descends", func(t *testing.T) {
		paths, err := adapter.Find([]m.Path{m.Path(root + "/...")})
		require.NoError(t, err)

		assert.ElementsMatch(t, []m.Path{m.Path(top), m.Path(alt), m.Path(nested)}, paths)
	})

	t.Run("explicit files are kept and deduplicated", func(t *testing.T) {
		paths, err := adapter.Find([]m.Path{m.Path(notes), m.Path(top), m.Path(root)})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(notes), m.Path(top), m.Path(alt)}, paths)
	})

	t.Run("missing root fails", func(t *testing.T) {
		_, err := adapter.Find([]m.Path{m.Path(filepath.Join(root, "missing.yaml"))})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")
	})
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "score.yaml")
	content := []byte("template: string_quartet\nsegments: []\n")
	writeTestBytes(t, path, content)

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, hashBytes(content), hash)

	_, err = adapter.HashFile(m.Path(filepath.Join(root, "missing.yaml")))
	assert.Error(t, err)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "score.yaml")
	writeTestFile(t, path, "template: string_quartet\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)

	assert.False(t, info.IsDir(), "FileInfo() reported file as directory")

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir(), "FileInfo() reported directory as file")
}

func TestParseRootPath(t *testing.T) {
	path, recursive := parseRootPath("./scores/...")
	assert.Equal(t, "./scores", path)
	assert.True(t, recursive)

	path, recursive = parseRootPath("./scores")
	assert.Equal(t, "./scores", path)
	assert.False(t, recursive)
}

func TestNormalizeRootPath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	path, recursive, err := normalizeRootPath("~/scores/...")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "scores"), path)
	assert.True(t, recursive)

	path, _, err = normalizeRootPath("")
	require.NoError(t, err)
	assert.Equal(t, ".", path)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}

func hashBytes(content []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(content))
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}
