package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
)

// MoveAll moves every regular file directly under the source directory
// into the destination directory. Non-recursive: subdirectories are
// neither touched nor reported. Files whose name already exists in the
// destination are skipped and counted, both copies left untouched.
func (p *Provider) MoveAll(ctx context.Context, op types.Operation) *types.Result {
	sourceDir := strings.TrimSpace(op.Param("source_dir"))
	if sourceDir == "" {
		return Failure("source_dir parameter required")
	}
	destDir := strings.TrimSpace(op.Param("destination_dir"))
	if destDir == "" {
		return Failure("destination_dir parameter required")
	}

	sourcePath := p.resolver.Resolve(sourceDir, p.current)
	destPath := p.resolver.Resolve(destDir, p.current)

	if info, err := os.Stat(sourcePath); err != nil {
		return Failure(fmt.Sprintf("Source directory does not exist: %s", sourcePath))
	} else if !info.IsDir() {
		return Failure(fmt.Sprintf("Source is not a directory: %s", sourcePath))
	}

	if info, err := os.Stat(destPath); err != nil {
		return Failure(fmt.Sprintf("Destination directory does not exist: %s", destPath))
	} else if !info.IsDir() {
		return Failure(fmt.Sprintf("Destination is not a directory: %s", destPath))
	}

	entries, err := os.ReadDir(sourcePath)
	if err != nil {
		return Failure(fmt.Sprintf("Error reading %s: %v", sourcePath, err))
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 {
		return Success(fmt.Sprintf("No files found in the source directory: %s", sourcePath),
			map[string]interface{}{"moved": 0, "skipped": 0})
	}

	moved, skipped := 0, 0
	for _, name := range files {
		sourceFile := filepath.Join(sourcePath, name)
		destFile := filepath.Join(destPath, name)

		if _, err := os.Stat(destFile); err == nil {
			skipped++
			continue
		}

		if err := moveEntry(sourceFile, destFile); err != nil {
			return Failure(fmt.Sprintf("Error moving %s: %v", sourceFile, err))
		}
		moved++
		p.log.Debug("moved file", zap.String("name", name),
			zap.Int("done", moved), zap.Int("total", len(files)))
	}

	message := fmt.Sprintf("Moved %d files from %s to %s", moved, sourcePath, destPath)
	if skipped > 0 {
		message += fmt.Sprintf("\nSkipped %d files that already exist in the destination.", skipped)
	}

	return Success(message, map[string]interface{}{"moved": moved, "skipped": skipped})
}
