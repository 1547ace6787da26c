package paths

import (
	"path/filepath"
	"regexp"
	"strings"
)

// driveRef matches bare volume references such as "d", "d:", "drive d".
var driveRef = regexp.MustCompile(`^(?i:drive\s+)?([a-zA-Z])[:\s]?$`)

// Resolver turns raw location tokens into absolute paths. It performs
// no I/O; volume roots are discovered once at startup and passed in.
type Resolver struct {
	table   *Table
	volumes map[string]string
}

// NewResolver creates a resolver over an alias table and the discovered
// volume roots (lower-cased drive letter to root path; empty on
// platforms without lettered volumes).
func NewResolver(table *Table, volumes map[string]string) *Resolver {
	return &Resolver{table: table, volumes: volumes}
}

// Resolve maps a location token to an absolute path. It never fails:
// unknown tokens are treated as paths relative to currentPath.
func (r *Resolver) Resolve(token, currentPath string) string {
	if token == "" {
		return currentPath
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return currentPath
	}

	if filepath.IsAbs(token) {
		return token
	}

	if path, ok := r.table.Lookup(token); ok {
		return path
	}

	// Bare volume reference ("d", "drive d") to a known volume root
	if m := driveRef.FindStringSubmatch(token); m != nil {
		if root, ok := r.volumes[strings.ToLower(m[1])]; ok {
			return root
		}
	}

	// Volume-qualified path ("d:drafts") passes through untouched
	if len(token) > 1 && isLetter(token[0]) && token[1] == ':' {
		return token
	}

	return filepath.Join(currentPath, token)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
