// Package launcher hands paths to the platform's desktop environment.
//
// Both entry points are fire-and-forget: callers learn whether the
// launch command could be spawned, never whether the application it
// started did anything useful.
package launcher

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/mohdjaved291/File-Commander/internal/logging"
	"go.uber.org/zap"
)

// Launcher spawns platform open commands.
type Launcher struct {
	log *logging.Logger
}

// New creates a launcher.
func New(log *logging.Logger) *Launcher {
	if log == nil {
		log = logging.NewDefault()
	}
	return &Launcher{log: log}
}

// OpenInFileManager opens a file-manager window at path.
func (l *Launcher) OpenInFileManager(path string) error {
	return l.spawn(fileManagerArgs(runtime.GOOS, path))
}

// OpenWithDefaultApp opens path with its default application.
func (l *Launcher) OpenWithDefaultApp(path string) error {
	return l.spawn(defaultAppArgs(runtime.GOOS, path))
}

// fileManagerArgs builds the platform command for a file-manager view.
func fileManagerArgs(goos, path string) []string {
	switch goos {
	case "windows":
		return []string{"explorer", path}
	case "darwin":
		return []string{"open", path}
	default:
		return []string{"xdg-open", path}
	}
}

// defaultAppArgs builds the platform command for default-app open.
func defaultAppArgs(goos, path string) []string {
	switch goos {
	case "windows":
		// start is a cmd builtin; the empty string is the window title
		return []string{"cmd", "/c", "start", "", path}
	case "darwin":
		return []string{"open", path}
	default:
		return []string{"xdg-open", path}
	}
}

func (l *Launcher) spawn(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", args[0], err)
	}

	l.log.Debug("launched", zap.Strings("command", args))

	// Reap the child without blocking the caller
	go func() { _ = cmd.Wait() }()
	return nil
}
