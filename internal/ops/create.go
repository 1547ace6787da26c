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

// CreateFolder creates a directory (with missing parents) under the
// resolved location. An existing target is reported, never touched.
func (p *Provider) CreateFolder(ctx context.Context, op types.Operation) *types.Result {
	name := strings.TrimSpace(op.Param("folder_name"))
	if name == "" {
		return Failure("folder_name parameter required")
	}

	base := p.resolver.Resolve(op.Param("location"), p.current)
	target := filepath.Join(base, name)

	if _, err := os.Stat(target); err == nil {
		return Failure(fmt.Sprintf("Folder already exists: %s", target))
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return Failure(fmt.Sprintf("Error creating folder %s: %v", target, err))
	}

	p.log.Debug("created folder", zap.String("path", target))
	return Success(fmt.Sprintf("Created folder: %s", target), map[string]interface{}{"path": target})
}

// CreateFile creates an empty or content-seeded file under the
// resolved location. Creating over an existing file is an idempotent
// no-op, flagged so the caller can tell it apart from a fresh create.
func (p *Provider) CreateFile(ctx context.Context, op types.Operation) *types.Result {
	name := strings.TrimSpace(op.Param("file_name"))
	if name == "" {
		return Failure("file_name parameter required")
	}

	base := p.resolver.Resolve(op.Param("location"), p.current)
	target := filepath.Join(base, name)

	if _, err := os.Stat(target); err == nil {
		result := Failure(fmt.Sprintf("File already exists: %s", target))
		result.Data = map[string]interface{}{"path": target, "already_exists": true}
		return result
	}

	if err := os.WriteFile(target, []byte(op.Param("content")), 0o644); err != nil {
		return Failure(fmt.Sprintf("Error creating file %s: %v", target, err))
	}

	p.log.Debug("created file", zap.String("path", target))
	return Success(fmt.Sprintf("Created file: %s", target), map[string]interface{}{"path": target})
}
