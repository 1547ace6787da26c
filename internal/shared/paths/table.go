package paths

import (
	"path/filepath"
	"strings"
)

// Table is the immutable alias table: normalized location name to
// absolute path. Built once at startup and never mutated afterwards.
type Table struct {
	entries map[string]string
}

// NewTable builds a table from the given entries. Keys are normalized
// (lower-cased, trimmed); the input map is copied, not retained.
func NewTable(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	for name, path := range entries {
		t.entries[Normalize(name)] = path
	}
	return t
}

// Normalize lower-cases and trims a location name for table lookup.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the path mapped to a location name.
func (t *Table) Lookup(name string) (string, bool) {
	path, ok := t.entries[Normalize(name)]
	return path, ok
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Seed builds the startup alias entries: the platform's well-known
// directories under home, common spelling variants, the designated
// movies root, and one set of aliases per discovered volume root.
func Seed(home, moviesRoot string, volumes map[string]string) map[string]string {
	desktop := filepath.Join(home, "Desktop")
	downloads := filepath.Join(home, "Downloads")
	documents := filepath.Join(home, "Documents")
	pictures := filepath.Join(home, "Pictures")

	entries := map[string]string{
		"home":      home,
		"desktop":   desktop,
		"downloads": downloads,
		"documents": documents,
		"pictures":  pictures,
		"music":     filepath.Join(home, "Music"),
		"videos":    filepath.Join(home, "Videos"),
		"movies":    moviesRoot,

		// Common spelling variants
		"docs":         documents,
		"my documents": documents,
		"my desktop":   desktop,
		"my downloads": downloads,
		"pics":         pictures,
		"photos":       pictures,
	}

	for letter, root := range volumes {
		entries[letter] = root
		entries["drive "+letter] = root
		entries["drive_"+letter] = root
		entries[letter+"_drive"] = root
	}

	return entries
}

// Merge overlays extra entries on top of seeded ones. Used for the
// user alias file; user entries win on collision.
func Merge(base, extra map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(extra))
	for name, path := range base {
		merged[name] = path
	}
	for name, path := range extra {
		merged[name] = path
	}
	return merged
}
