package emit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctools/docsmith/internal/classify"
	"github.com/doctools/docsmith/internal/nav"
)

const splitDir = "api-reference/openapi-split"
const outDir = "api-reference/endpoint"

func testEmitter(t *testing.T) (*Emitter, *bytes.Buffer) {
	t.Helper()
	fs := memfs.New()
	log := &bytes.Buffer{}
	return &Emitter{
		FS:       fs,
		SplitDir: splitDir,
		OutDir:   outDir,
		Icons:    classify.DefaultPageIcons(),
		Log:      log,
	}, log
}

func writeSplit(t *testing.T, e *Emitter, name, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(e.FS, e.FS.Join(splitDir, name), []byte(content), 0o644))
}

func fixture(t *testing.T) (*Emitter, *bytes.Buffer) {
	e, log := testEmitter(t)
	writeSplit(t, e, "_index.json", `{"categories": ["Camera Webservice", "Access Control Webservice"]}`)
	writeSplit(t, e, "_base.json", `{"openapi": "3.0.0"}`)
	writeSplit(t, e, "camera.json", `{
		"tag": "Camera Webservice",
		"paths": {
			"/api/camera/getCameraList": {"get": {"summary": "Get camera list"}},
			"/api/camera/createStream": {"post": {"summary": "Create stream", "deprecated": true}}
		}
	}`)
	writeSplit(t, e, "access-control.json", `{
		"tag": "Access Control Webservice",
		"paths": {
			"/api/accessControl/unlockDoor": {"post": {"summary": "Unlock a door"}}
		}
	}`)
	return e, log
}

func TestRun_WritesPagesAndListing(t *testing.T) {
	e, _ := fixture(t)
	res, err := e.Run()
	require.NoError(t, err)

	assert.Equal(t, 3, res.Pages)
	require.Len(t, res.Categories, 2)
	assert.Equal(t, "access-control", res.Categories[0].Name, "categories processed in file order")
	assert.Equal(t, "camera", res.Categories[1].Name)

	page, err := util.ReadFile(e.FS, outDir+"/camera/camera-getcameralist.mdx")
	require.NoError(t, err)
	assert.Contains(t, string(page), "openapi: \"GET /api/camera/getCameraList\"")

	dep, err := util.ReadFile(e.FS, outDir+"/camera/camera-createstream.mdx")
	require.NoError(t, err)
	assert.Contains(t, string(dep), "deprecated: true")
}

func TestRun_ListingUsesIndexDisplayNames(t *testing.T) {
	e, _ := fixture(t)
	_, err := e.Run()
	require.NoError(t, err)

	data, err := util.ReadFile(e.FS, outDir+"/"+NavigationFile)
	require.NoError(t, err)

	var groups []nav.Group
	require.NoError(t, json.Unmarshal(data, &groups))
	require.Len(t, groups, 2)
	assert.Equal(t, "Access Control", groups[0].Name)
	assert.Equal(t, "Camera", groups[1].Name)
	assert.Equal(t, outDir+"/camera/camera-createstream", groups[1].Pages[0].Leaf)
	assert.Equal(t, outDir+"/camera/camera-getcameralist", groups[1].Pages[1].Leaf)
}

func TestRun_FallbackDisplayNameIsTitleCased(t *testing.T) {
	e, _ := testEmitter(t)
	writeSplit(t, e, "_index.json", `{"categories": []}`)
	writeSplit(t, e, "door-controller.json", `{
		"tag": "Door Controller",
		"paths": {"/api/doorController/getState": {"get": {}}}
	}`)

	res, err := e.Run()
	require.NoError(t, err)
	require.Len(t, res.Categories, 1)

	data, err := util.ReadFile(e.FS, outDir+"/"+NavigationFile)
	require.NoError(t, err)
	var groups []nav.Group
	require.NoError(t, json.Unmarshal(data, &groups))
	assert.Equal(t, "Door Controller", groups[0].Name)
}

func TestRun_MissingIndexAborts(t *testing.T) {
	e, _ := testEmitter(t)
	writeSplit(t, e, "camera.json", `{"tag": "Camera", "paths": {"/api/camera/get": {"get": {}}}}`)

	_, err := e.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), IndexFile)
}

func TestRun_EmptySplitDirIsAnError(t *testing.T) {
	e, _ := testEmitter(t)
	writeSplit(t, e, "_index.json", `{"categories": []}`)

	_, err := e.Run()
	assert.Error(t, err)
}

func TestRun_UnparseableCategorySkippedBatchContinues(t *testing.T) {
	e, log := fixture(t)
	writeSplit(t, e, "broken.json", `{not json`)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
	assert.Contains(t, log.String(), "broken.json")
}

func TestRun_IdentifierCollisionWarnsAndLastWriteWins(t *testing.T) {
	e, log := testEmitter(t)
	writeSplit(t, e, "_index.json", `{"categories": []}`)
	writeSplit(t, e, "camera.json", `{
		"tag": "Camera",
		"paths": {
			"/api/camera/get.list": {"get": {"summary": "dotted"}},
			"/api/camera/getList": {"get": {"summary": "plain"}}
		}
	}`)

	res, err := e.Run()
	require.NoError(t, err)
	assert.Contains(t, log.String(), "collides")
	require.Len(t, res.Categories, 1)
	assert.Len(t, res.Categories[0].Pages, 1, "collided identifier listed once")

	page, err := util.ReadFile(e.FS, outDir+"/camera/camera-getlist.mdx")
	require.NoError(t, err)
	assert.Contains(t, string(page), "plain", "later path wins")
}

func TestRewriteIcons(t *testing.T) {
	e, _ := testEmitter(t)
	get := "---\ntitle: \"x\"\nicon: \"camera\"\n---\n"
	reboot := "---\ntitle: \"y\"\nicon: \"camera\"\n---\n"
	require.NoError(t, util.WriteFile(e.FS, outDir+"/camera/camera-getcameralist.mdx", []byte(get), 0o644))
	require.NoError(t, util.WriteFile(e.FS, outDir+"/camera/camera-rebootdevice.mdx", []byte(reboot), 0o644))

	updated, err := e.RewriteIcons(classify.DefaultActionIcons(), classify.DefaultCategoryIcons())
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	data, _ := util.ReadFile(e.FS, outDir+"/camera/camera-getcameralist.mdx")
	assert.Contains(t, string(data), "icon: \"eye\"", "action verb icon wins")

	data, _ = util.ReadFile(e.FS, outDir+"/camera/camera-rebootdevice.mdx")
	assert.Contains(t, string(data), "icon: \"video\"", "category icon fallback")
}

func TestRewriteIcons_NoChangeNotCounted(t *testing.T) {
	e, _ := testEmitter(t)
	content := "---\ntitle: \"x\"\nicon: \"eye\"\n---\n"
	require.NoError(t, util.WriteFile(e.FS, outDir+"/camera/camera-getcameralist.mdx", []byte(content), 0o644))

	updated, err := e.RewriteIcons(classify.DefaultActionIcons(), classify.DefaultCategoryIcons())
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestRewriteIcons_MissingEndpointDir(t *testing.T) {
	e, _ := testEmitter(t)
	_, err := e.RewriteIcons(classify.DefaultActionIcons(), classify.DefaultCategoryIcons())
	assert.Error(t, err)
}
