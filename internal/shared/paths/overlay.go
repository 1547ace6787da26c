package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// LoadOverlay reads a user alias file and returns its entries. The
// format follows the file extension (.toml, .yaml/.yml, .json), each a
// flat mapping of location name to absolute path.
func LoadOverlay(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	entries := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("JSON parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported alias file format: %s", filepath.Ext(path))
	}

	for name, target := range entries {
		if !filepath.IsAbs(target) {
			return nil, fmt.Errorf("alias %q must map to an absolute path, got %q", name, target)
		}
	}

	return entries, nil
}
