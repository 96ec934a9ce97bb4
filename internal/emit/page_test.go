package emit

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doctools/docsmith/internal/classify"
)

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"/api/camera/getCameraList": "camera-getcameralist",
		"/api/door/lock":            "door-lock",
		"/api/org/get_user.details": "org-getuserdetails",
		"/noprefix/Thing":           "-noprefix-thing", // prefix absent: only the known prefix is stripped
	}
	for in, want := range cases {
		assert.Equal(t, want, Identifier(in), in)
	}
}

func TestFromPathItem_MethodPriority(t *testing.T) {
	item := map[string]any{
		"post": map[string]any{"summary": "created"},
		"get":  map[string]any{"summary": "fetched", "deprecated": true},
	}
	ep := FromPathItem("/api/camera/get", item)
	assert.Equal(t, "GET", ep.Method)
	assert.Equal(t, "fetched", ep.Summary)
	assert.True(t, ep.Deprecated)
}

func TestFromPathItem_NoRecognizedMethodDefaultsToPost(t *testing.T) {
	ep := FromPathItem("/api/camera/opts", map[string]any{"options": map[string]any{"summary": "x"}})
	assert.Equal(t, "POST", ep.Method)
	assert.Empty(t, ep.Summary)
	assert.Empty(t, ep.Description)
	assert.False(t, ep.Deprecated)
}

func TestPage_Frontmatter(t *testing.T) {
	ep := Endpoint{Path: "/api/camera/getCameraList", Method: "GET", Summary: "Get camera list"}
	page := ep.Page("camera", classify.DefaultPageIcons())

	assert.True(t, strings.HasPrefix(page, "---\n"))
	assert.Contains(t, page, "title: \"Get camera list\"\n")
	assert.Contains(t, page, "description: \"Get camera list\"\n")
	assert.Contains(t, page, "openapi: \"GET /api/camera/getCameraList\"\n")
	assert.Contains(t, page, "icon: \"camera\"\n")
	assert.NotContains(t, page, "deprecated:")
	assert.Contains(t, page, "<Note>\n")
}

func TestPage_TitleFallsBackToPath(t *testing.T) {
	ep := Endpoint{Path: "/api/camera/reboot", Method: "POST"}
	page := ep.Page("camera", nil)
	assert.Contains(t, page, "title: \"camera/reboot\"\n")
	assert.Contains(t, page, "description: \"API endpoint for /api/camera/reboot\"\n")
}

func TestPage_DescriptionTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	ep := Endpoint{Path: "/api/x/y", Method: "GET", Description: long}
	page := ep.Page("x", nil)

	want := strings.Repeat("a", 157) + "..."
	require.Contains(t, page, "description: \""+want+"\"\n")
	assert.Equal(t, 160, len(want))

	exact := strings.Repeat("b", 160)
	page = Endpoint{Path: "/api/x/y", Method: "GET", Description: exact}.Page("x", nil)
	assert.Contains(t, page, "description: \""+exact+"\"\n", "exactly 160 characters pass through")
}

func TestPage_DescriptionTruncationCountsRunes(t *testing.T) {
	// "é" is two bytes; byte-indexed truncation would cut mid-rune.
	long := strings.Repeat("é", 200)
	page := Endpoint{Path: "/api/x/y", Method: "GET", Description: long}.Page("x", nil)

	want := strings.Repeat("é", 157) + "..."
	assert.Contains(t, page, "description: "+strconv.Quote(want)+"\n")
	assert.True(t, utf8.ValidString(page))

	exact := strings.Repeat("é", 160)
	page = Endpoint{Path: "/api/x/y", Method: "GET", Description: exact}.Page("x", nil)
	assert.Contains(t, page, "description: "+strconv.Quote(exact)+"\n", "160 runes pass through untouched")
}

func TestPage_DeprecatedBlocks(t *testing.T) {
	ep := Endpoint{Path: "/api/x/y", Method: "GET", Summary: "s", Deprecated: true}
	page := ep.Page("x", nil)
	assert.Contains(t, page, "deprecated: true\n")
	assert.Contains(t, page, "<Warning>\nThis endpoint is deprecated")
}

func TestPage_BodyRepeatsDistinctDescription(t *testing.T) {
	ep := Endpoint{Path: "/api/x/y", Method: "GET", Summary: "short", Description: "a much longer body"}
	page := ep.Page("x", nil)
	assert.Contains(t, page, "---\n\na much longer body\n\n")

	same := Endpoint{Path: "/api/x/y", Method: "GET", Summary: "same", Description: "same"}
	assert.NotContains(t, same.Page("x", nil), "---\n\nsame\n\n")
}

func TestPage_UnknownCategoryGetsDefaultIcon(t *testing.T) {
	ep := Endpoint{Path: "/api/x/y", Method: "GET"}
	assert.Contains(t, ep.Page("mystery", classify.DefaultPageIcons()), "icon: \"circle-dot\"\n")
}
