package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/shared/paths"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"github.com/stretchr/testify/require"
)

// fakeLauncher records launch requests instead of spawning anything.
type fakeLauncher struct {
	opened []string
	played []string
	err    error
}

func (f *fakeLauncher) OpenInFileManager(path string) error {
	f.opened = append(f.opened, path)
	return f.err
}

func (f *fakeLauncher) OpenWithDefaultApp(path string) error {
	f.played = append(f.played, path)
	return f.err
}

// newTestProvider builds a provider rooted in a fresh temp home with
// Desktop, Downloads, Documents and Movies directories created.
func newTestProvider(t *testing.T) (*Provider, string, *fakeLauncher) {
	t.Helper()
	home := t.TempDir()
	for _, name := range []string{"Desktop", "Downloads", "Documents", "Movies"} {
		require.NoError(t, os.Mkdir(filepath.Join(home, name), 0o755))
	}

	moviesRoot := filepath.Join(home, "Movies")
	table := paths.NewTable(paths.Seed(home, moviesRoot, nil))
	launcher := &fakeLauncher{}

	p := New(Config{
		Resolver:    paths.NewResolver(table, nil),
		Launcher:    launcher,
		Logger:      logging.NewNop(),
		CurrentPath: home,
		MediaRoot:   moviesRoot,
	})
	return p, home, launcher
}

func op(kind types.Kind, params map[string]string) types.Operation {
	return types.Operation{Kind: kind, Params: params}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}
