package ops

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
)

// Rename renames a file or folder in place. Both names resolve under
// the same base location; an existing destination is never overwritten.
func (p *Provider) Rename(ctx context.Context, op types.Operation) *types.Result {
	oldName := strings.TrimSpace(op.Param("old_name"))
	if oldName == "" {
		return Failure("old_name parameter required")
	}
	newName := strings.TrimSpace(op.Param("new_name"))
	if newName == "" {
		return Failure("new_name parameter required")
	}

	base := p.resolver.Resolve(op.Param("location"), p.current)
	oldPath := filepath.Join(base, oldName)
	newPath := filepath.Join(base, newName)

	if _, err := os.Stat(oldPath); err != nil {
		return Failure(fmt.Sprintf("Source does not exist: %s", oldPath))
	}
	if _, err := os.Stat(newPath); err == nil {
		return Failure(fmt.Sprintf("Destination already exists: %s", newPath))
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return Failure(fmt.Sprintf("Error renaming %s: %v", oldPath, err))
	}

	p.log.Debug("renamed", zap.String("from", oldPath), zap.String("to", newPath))
	return Success(fmt.Sprintf("Renamed from %s to %s", oldPath, newPath),
		map[string]interface{}{"from": oldPath, "to": newPath})
}

// Move relocates a file or folder. Source and destination resolve
// independently; when the destination is an existing directory the
// item is moved into it under its own basename.
func (p *Provider) Move(ctx context.Context, op types.Operation) *types.Result {
	source := strings.TrimSpace(op.Param("source"))
	if source == "" {
		return Failure("source parameter required")
	}
	destination := strings.TrimSpace(op.Param("destination"))
	if destination == "" {
		return Failure("destination parameter required")
	}

	sourcePath := p.resolver.Resolve(source, p.current)
	destPath := p.resolver.Resolve(destination, p.current)

	if _, err := os.Stat(sourcePath); err != nil {
		return Failure(fmt.Sprintf("Source does not exist: %s", sourcePath))
	}

	if info, err := os.Stat(destPath); err == nil && info.IsDir() {
		destPath = filepath.Join(destPath, filepath.Base(sourcePath))
	}

	if _, err := os.Stat(destPath); err == nil {
		return Failure(fmt.Sprintf("Destination already exists: %s", destPath))
	}

	if err := moveEntry(sourcePath, destPath); err != nil {
		return Failure(fmt.Sprintf("Error moving %s: %v", sourcePath, err))
	}

	p.log.Debug("moved", zap.String("from", sourcePath), zap.String("to", destPath))
	return Success(fmt.Sprintf("Moved from %s to %s", sourcePath, destPath),
		map[string]interface{}{"from": sourcePath, "to": destPath})
}

// moveEntry renames a path, falling back to copy-and-remove for
// regular files when the rename crosses filesystems.
func moveEntry(source, dest string) error {
	err := os.Rename(source, dest)
	if err == nil {
		return nil
	}

	info, statErr := os.Stat(source)
	if statErr != nil || !info.Mode().IsRegular() {
		return err
	}

	if copyErr := copyFile(source, dest, info.Mode().Perm()); copyErr != nil {
		return copyErr
	}
	return os.Remove(source)
}

func copyFile(source, dest string, perm os.FileMode) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
