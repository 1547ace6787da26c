package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
)

// FileMatch is a scored search candidate, ephemeral to one scan.
type FileMatch struct {
	Path  string
	Score int
}

// PlayBestMatch scans the media root for the best-scoring file and
// hands it to the default player. The result reports the basename
// opened; launcher success is not observed.
func (p *Provider) PlayBestMatch(ctx context.Context, op types.Operation) *types.Result {
	query := strings.TrimSpace(op.Param("movie_name"))
	if query == "" {
		return Failure("No movie name specified.")
	}

	if _, err := os.Stat(p.mediaRoot); err != nil {
		return Failure(fmt.Sprintf("Movies directory does not exist: %s", p.mediaRoot))
	}

	best, err := p.findBest(ctx, query, p.mediaRoot)
	if err != nil {
		return Failure(fmt.Sprintf("Error playing movie: %v", err))
	}
	if best == nil {
		return Failure(fmt.Sprintf("No movie found with name '%s'", query))
	}

	if err := p.launcher.OpenWithDefaultApp(best.Path); err != nil {
		p.log.Warn("player launch failed", zap.String("path", best.Path), zap.Error(err))
	}

	return Success(fmt.Sprintf("Playing movie: %s", filepath.Base(best.Path)),
		map[string]interface{}{"path": best.Path, "score": best.Score})
}

// findBest walks the whole tree under root and keeps the single
// highest-scoring media file, or nil when nothing scores above zero.
// Equal scores resolve to the lexicographically smaller path, since
// the parallel walk visits files in no fixed order.
func (p *Provider) findBest(ctx context.Context, query, root string) (*FileMatch, error) {
	var mu sync.Mutex
	var best *FileMatch
	conf := fastwalk.Config{Follow: false}

	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		if !p.mediaExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		score := matchScore(query, d.Name())
		if score == 0 {
			return nil
		}

		mu.Lock()
		if best == nil || score > best.Score ||
			(score == best.Score && path < best.Path) {
			best = &FileMatch{Path: path, Score: score}
		}
		mu.Unlock()
		return nil
	})

	if err != nil {
		return nil, err
	}
	return best, nil
}

// matchScore computes the additive match heuristic: 50 for the whole
// query appearing in the filename, plus 10 per query word found. The
// checks are independent on purpose, so a fully contained query also
// collects its per-word bonuses, and repeated words count each time.
func matchScore(query, filename string) int {
	queryLower := strings.ToLower(query)
	nameLower := strings.ToLower(filename)

	score := 0
	if strings.Contains(nameLower, queryLower) {
		score += 50
	}
	for _, word := range strings.Fields(queryLower) {
		if strings.Contains(nameLower, word) {
			score += 10
		}
	}
	return score
}
