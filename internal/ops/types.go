package ops

import (
	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/shared/paths"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

// Launcher is the platform collaborator that hands paths off to the
// desktop environment. Fire-and-forget: handlers report the path they
// asked to open, not whether the launch ultimately succeeded.
type Launcher interface {
	OpenInFileManager(path string) error
	OpenWithDefaultApp(path string) error
}

// Provider executes catalog operations against the real filesystem.
type Provider struct {
	resolver *paths.Resolver
	launcher Launcher
	log      *logging.Logger

	// current working location, read by resolution; one plan executes
	// at a time so it is never concurrently written
	current string

	mediaRoot string
	mediaExts map[string]bool
}

// Config carries Provider dependencies.
type Config struct {
	Resolver    *paths.Resolver
	Launcher    Launcher
	Logger      *logging.Logger
	CurrentPath string
	MediaRoot   string
}

// New creates an operation provider.
func New(cfg Config) *Provider {
	log := cfg.Logger
	if log == nil {
		log = logging.NewDefault()
	}
	return &Provider{
		resolver:  cfg.Resolver,
		launcher:  cfg.Launcher,
		log:       log,
		current:   cfg.CurrentPath,
		mediaRoot: cfg.MediaRoot,
		mediaExts: mediaExtensions(),
	}
}

// mediaExtensions returns the fixed set of known media suffixes.
func mediaExtensions() map[string]bool {
	exts := []string{
		".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm",
		".m4v", ".mpg", ".mpeg", ".3gp", ".3g2", ".m2ts",
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}

// Success creates a successful result.
func Success(message string, data map[string]interface{}) *types.Result {
	return &types.Result{Success: true, Message: message, Data: data}
}

// Failure creates a failed result with a user-facing message.
func Failure(message string) *types.Result {
	return &types.Result{Success: false, Message: message}
}
