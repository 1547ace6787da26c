package ops

import (
	"context"
	"fmt"
	"os"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
)

// OpenLocation opens a file-manager view at the resolved location. The
// launch is fire-and-forget: the result reports the path handed to the
// launcher, not whether the file manager came up.
func (p *Provider) OpenLocation(ctx context.Context, op types.Operation) *types.Result {
	path := p.resolver.Resolve(op.Param("location"), p.current)

	if _, err := os.Stat(path); err != nil {
		return Failure(fmt.Sprintf("Location does not exist: %s", path))
	}

	if err := p.launcher.OpenInFileManager(path); err != nil {
		p.log.Warn("file manager launch failed", zap.String("path", path), zap.Error(err))
	}

	return Success(fmt.Sprintf("Opened file explorer at: %s", path),
		map[string]interface{}{"path": path})
}
