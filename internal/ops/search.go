package ops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

// searchLimit caps search results; traversal stops once it is reached.
const searchLimit = 10

var errLimitReached = errors.New("search limit reached")

// Search finds up to 10 files under the resolved path whose name
// contains the term (case-insensitive). Terms carrying glob
// metacharacters are treated as glob patterns instead.
func (p *Provider) Search(ctx context.Context, op types.Operation) *types.Result {
	term := strings.TrimSpace(op.Param("search_term"))
	if term == "" {
		return Failure("No search term specified.")
	}

	basePath := p.resolver.Resolve(op.Param("search_path"), p.current)
	if _, err := os.Stat(basePath); err != nil {
		return Failure(fmt.Sprintf("Search location does not exist: %s", basePath))
	}

	var found []string
	var err error
	if strings.ContainsAny(term, "*?[") {
		found, err = globSearch(term, basePath)
	} else {
		found, err = scanSearch(ctx, term, basePath)
	}
	if err != nil {
		return Failure(fmt.Sprintf("Error searching files: %v", err))
	}

	if len(found) == 0 {
		return Failure(fmt.Sprintf("No files found containing '%s' in %s", term, basePath))
	}

	rows := make([]map[string]interface{}, len(found))
	for i, path := range found {
		rows[i] = map[string]interface{}{
			"index": i + 1,
			"name":  filepath.Base(path),
			"dir":   filepath.Dir(path),
			"path":  path,
		}
	}

	return Success(fmt.Sprintf("Found %d files containing '%s'", len(found), term),
		map[string]interface{}{"matches": rows, "count": len(found)})
}

// scanSearch walks the tree and collects casefolded substring matches
// against the filename, exiting as soon as the cap is hit.
func scanSearch(ctx context.Context, term, basePath string) ([]string, error) {
	termLower := strings.ToLower(term)

	var mu sync.Mutex
	var found []string
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, basePath, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}

		if !strings.Contains(strings.ToLower(d.Name()), termLower) {
			return nil
		}

		mu.Lock()
		defer mu.Unlock()
		if len(found) >= searchLimit {
			return errLimitReached
		}
		found = append(found, path)
		if len(found) >= searchLimit {
			return errLimitReached
		}
		return nil
	})

	if err != nil && !errors.Is(err, errLimitReached) {
		return nil, err
	}
	return found, nil
}

// globSearch matches a glob pattern (** supported) against the tree,
// returning at most the cap. Directories are filtered out so results
// stay file-only like the scan path.
func globSearch(pattern, basePath string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(basePath, pattern))
	if err != nil {
		return nil, err
	}

	var found []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		found = append(found, match)
		if len(found) >= searchLimit {
			break
		}
	}
	return found, nil
}
