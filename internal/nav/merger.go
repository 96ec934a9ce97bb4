package nav

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrTabNotFound reports that the configured tab is missing from the
// navigation document. The document is never modified in that case.
var ErrTabNotFound = errors.New("navigation tab not found")

// Mode selects which groups of the target tab a merge replaces.
type Mode struct {
	names map[string]struct{}
}

// ReplaceAll replaces every group after the tab's introduction entry.
func ReplaceAll() Mode { return Mode{} }

// ReplaceNamed replaces only the existing groups whose display name is in
// names, leaving every other group byte-untouched.
func ReplaceNamed(names ...string) Mode {
	m := Mode{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		m.names[n] = struct{}{}
	}
	return m
}

// Merger rewrites one tab's groups inside the navigation document. A
// verbatim backup of the document is written and flushed before any byte of
// the primary file changes, so a bad run can be reverted by hand.
type Merger struct {
	Path       string
	BackupPath string
	TabName    string
}

// ReadGroups returns the target tab's current groups, introduction entry
// included.
func (m *Merger) ReadGroups() ([]Group, error) {
	doc, err := os.ReadFile(m.Path)
	if err != nil {
		return nil, fmt.Errorf("read navigation document: %w", err)
	}
	idx, err := m.findTab(doc)
	if err != nil {
		return nil, err
	}
	raw := gjson.GetBytes(doc, fmt.Sprintf("navigation.tabs.%d.groups", idx))
	var groups []Group
	for _, r := range raw.Array() {
		var g Group
		if err := json.Unmarshal([]byte(r.Raw), &g); err != nil {
			return nil, fmt.Errorf("decode group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// Merge splices the rebuilt groups into the target tab and rewrites the
// document. Every byte outside the tab's groups array is preserved up to
// re-indentation, and re-indentation never reorders keys, so merging the
// same input twice produces identical bytes.
func (m *Merger) Merge(mode Mode, groups []Group) error {
	doc, err := os.ReadFile(m.Path)
	if err != nil {
		return fmt.Errorf("read navigation document: %w", err)
	}

	if err := m.backup(doc); err != nil {
		return fmt.Errorf("backup navigation document: %w", err)
	}

	idx, err := m.findTab(doc)
	if err != nil {
		return err
	}

	groupsPath := fmt.Sprintf("navigation.tabs.%d.groups", idx)
	existing := gjson.GetBytes(doc, groupsPath).Array()

	payload, err := buildPayload(mode, existing, groups)
	if err != nil {
		return err
	}

	updated, err := sjson.SetRawBytesOptions(doc, groupsPath, payload, nil)
	if err != nil {
		return fmt.Errorf("splice groups into %s: %w", groupsPath, err)
	}

	formatted := pretty.PrettyOptions(updated, &pretty.Options{Indent: "  ", Width: 80})
	if err := writeFile(m.Path, formatted); err != nil {
		return fmt.Errorf("write navigation document: %w", err)
	}
	return nil
}

// buildPayload renders the replacement groups array as raw JSON.
func buildPayload(mode Mode, existing []gjson.Result, groups []Group) ([]byte, error) {
	var parts []string

	if mode.names == nil {
		// Full replace: element 0 is the introduction entry and is kept
		// verbatim; everything after it is the new grouping.
		if len(existing) > 0 {
			parts = append(parts, existing[0].Raw)
		}
		for _, g := range groups {
			raw, err := marshalNoEscape(g)
			if err != nil {
				return nil, fmt.Errorf("encode group %q: %w", g.Name, err)
			}
			parts = append(parts, string(raw))
		}
	} else {
		byName := make(map[string]Group, len(groups))
		for _, g := range groups {
			byName[g.Name] = g
		}
		for i, e := range existing {
			name := e.Get("group").String()
			repl, ok := byName[name]
			if i == 0 || !ok {
				parts = append(parts, e.Raw)
				continue
			}
			raw, err := marshalNoEscape(repl)
			if err != nil {
				return nil, fmt.Errorf("encode group %q: %w", name, err)
			}
			parts = append(parts, string(raw))
		}
	}

	return []byte("[" + strings.Join(parts, ",") + "]"), nil
}

// findTab returns the index of the tab whose display name matches, or
// ErrTabNotFound.
func (m *Merger) findTab(doc []byte) (int, error) {
	tabs := gjson.GetBytes(doc, "navigation.tabs")
	for i, tab := range tabs.Array() {
		if tab.Get("tab").String() == m.TabName {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTabNotFound, m.TabName)
}

// backup writes a verbatim copy of the document and flushes it to disk
// before returning. The primary file is only touched after this succeeds.
func (m *Merger) backup(doc []byte) error {
	f, err := os.Create(m.BackupPath)
	if err != nil {
		return err
	}
	if _, err := f.Write(doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeFile persists data via a temp file in the same directory followed by
// a rename, preserving the original file's permissions.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".docsmith-nav-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp: %w", err)
	}

	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode())
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename temp to %s: %w", path, err)
	}
	return nil
}
