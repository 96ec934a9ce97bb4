package nav

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `{
  "zulu": "kept",
  "name": "Test Docs",
  "theme": "mint",
  "navigation": {
    "tabs": [
      {
        "tab": "Guides",
        "groups": [
          {"group": "Start", "pages": ["index", "quickstart"]}
        ]
      },
      {
        "tab": "API reference",
        "groups": [
          {"group": "API documentation", "pages": ["api-reference/introduction"]},
          {"group": "Old Camera", "pages": ["old-a", "old-b"]},
          {"group": "Old Door", "pages": ["old-c"]}
        ]
      }
    ]
  },
  "alpha": "also kept"
}`

func testMerger(t *testing.T) *Merger {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o644))
	return &Merger{
		Path:       path,
		BackupPath: filepath.Join(dir, "docs.json.backup"),
		TabName:    "API reference",
	}
}

func newGroups() []Group {
	return []Group{
		{Name: "Camera", Pages: []Entry{LeafEntry("api-reference/endpoint/camera/camera-get")}},
		{Name: "Door", Pages: []Entry{LeafEntry("api-reference/endpoint/door/door-get")}},
	}
}

func TestMerge_BackupMatchesPreMergeBytes(t *testing.T) {
	m := testMerger(t)
	require.NoError(t, m.Merge(ReplaceAll(), newGroups()))

	backup, err := os.ReadFile(m.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, testDoc, string(backup))
}

func TestMerge_ReplaceAllKeepsIntro(t *testing.T) {
	m := testMerger(t)
	require.NoError(t, m.Merge(ReplaceAll(), newGroups()))

	groups, err := m.ReadGroups()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "API documentation", groups[0].Name)
	assert.Equal(t, "api-reference/introduction", groups[0].Pages[0].Leaf)
	assert.Equal(t, "Camera", groups[1].Name)
	assert.Equal(t, "Door", groups[2].Name)
}

func TestMerge_UnrelatedConfigAndKeyOrderPreserved(t *testing.T) {
	m := testMerger(t)
	require.NoError(t, m.Merge(ReplaceAll(), newGroups()))

	out, err := os.ReadFile(m.Path)
	require.NoError(t, err)
	doc := string(out)

	assert.Contains(t, doc, `"zulu": "kept"`)
	assert.Contains(t, doc, `"alpha": "also kept"`)
	assert.Contains(t, doc, `"quickstart"`, "other tabs untouched")

	// Input key order survives: zulu before name, alpha after navigation.
	assert.Less(t, strings.Index(doc, `"zulu"`), strings.Index(doc, `"name"`))
	assert.Less(t, strings.Index(doc, `"navigation"`), strings.Index(doc, `"alpha"`))
}

func TestMerge_ByteIdempotent(t *testing.T) {
	m := testMerger(t)
	require.NoError(t, m.Merge(ReplaceAll(), newGroups()))
	first, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	require.NoError(t, m.Merge(ReplaceAll(), newGroups()))
	second, err := os.ReadFile(m.Path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))

	// And the second backup is the first run's output.
	backup, err := os.ReadFile(m.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(backup))
}

func TestMerge_MissingTabLeavesDocumentUntouched(t *testing.T) {
	m := testMerger(t)
	m.TabName = "No Such Tab"

	err := m.Merge(ReplaceAll(), newGroups())
	require.ErrorIs(t, err, ErrTabNotFound)

	out, readErr := os.ReadFile(m.Path)
	require.NoError(t, readErr)
	assert.Equal(t, testDoc, string(out))
}

func TestMerge_ReplaceNamedTouchesOnlyNamedGroups(t *testing.T) {
	m := testMerger(t)
	repl := Group{Name: "Old Camera", Pages: []Entry{
		GroupEntry(Group{Name: "Get & Find", Pages: []Entry{LeafEntry("old-a"), LeafEntry("old-b")}}),
	}}
	require.NoError(t, m.Merge(ReplaceNamed("Old Camera"), []Group{repl}))

	groups, err := m.ReadGroups()
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "API documentation", groups[0].Name)

	cam := groups[1]
	require.Len(t, cam.Pages, 1)
	require.False(t, cam.Pages[0].IsLeaf())
	assert.Equal(t, "Get & Find", cam.Pages[0].Sub.Name)

	door := groups[2]
	assert.Equal(t, "Old Door", door.Name)
	assert.Equal(t, "old-c", door.Pages[0].Leaf)
}

func TestMerge_ReplaceNamedNeverReplacesIntro(t *testing.T) {
	m := testMerger(t)
	repl := Group{Name: "API documentation", Pages: []Entry{LeafEntry("hijacked")}}
	require.NoError(t, m.Merge(ReplaceNamed("API documentation"), []Group{repl}))

	groups, err := m.ReadGroups()
	require.NoError(t, err)
	assert.Equal(t, "api-reference/introduction", groups[0].Pages[0].Leaf)
}

func TestReadGroups_MissingDocument(t *testing.T) {
	m := &Merger{Path: filepath.Join(t.TempDir(), "absent.json"), TabName: "API reference"}
	_, err := m.ReadGroups()
	assert.Error(t, err)
}
