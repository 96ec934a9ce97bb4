// Package nav models the navigation tree and merges rebuilt groupings into
// the persisted navigation document.
package nav

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one element of a group's pages list: either a leaf page path or
// a nested group. Exactly one of the two is set; a zero Entry is a leaf
// with an empty path.
type Entry struct {
	Leaf string
	Sub  *Group
}

// LeafEntry returns an entry referencing a single page.
func LeafEntry(page string) Entry { return Entry{Leaf: page} }

// GroupEntry returns an entry holding a nested group.
func GroupEntry(g Group) Entry { return Entry{Sub: &g} }

// IsLeaf reports whether the entry is a page reference.
func (e Entry) IsLeaf() bool { return e.Sub == nil }

// MarshalJSON renders a leaf as a bare JSON string and a nested group as a
// {"group","pages"} object.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Sub != nil {
		return marshalNoEscape(e.Sub)
	}
	return marshalNoEscape(e.Leaf)
}

// UnmarshalJSON accepts either form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty navigation entry")
	}
	if trimmed[0] == '"' {
		e.Sub = nil
		return json.Unmarshal(data, &e.Leaf)
	}
	g := &Group{}
	if err := json.Unmarshal(data, g); err != nil {
		return err
	}
	e.Leaf = ""
	e.Sub = g
	return nil
}

// Group is a named, ordered collection of entries. Entry order is render
// order and is never resorted by this package.
type Group struct {
	Name  string  `json:"group"`
	Pages []Entry `json:"pages"`
}

// Leaves counts leaf pages in the group, recursively.
func (g Group) Leaves() int {
	n := 0
	for _, e := range g.Pages {
		if e.IsLeaf() {
			n++
		} else {
			n += e.Sub.Leaves()
		}
	}
	return n
}

// Flat reports whether every entry in the group is a leaf.
func (g Group) Flat() bool {
	for _, e := range g.Pages {
		if !e.IsLeaf() {
			return false
		}
	}
	return true
}

// MarshalGroups renders groups as 2-space-indented JSON. Group names may
// contain "&", so HTML escaping is off.
func MarshalGroups(groups []Group) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(groups); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalNoEscape is json.Marshal without HTML escaping and without the
// encoder's trailing newline.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
