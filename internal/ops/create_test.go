package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFolder(t *testing.T) {
	p, home, _ := newTestProvider(t)
	ctx := context.Background()

	result := p.CreateFolder(ctx, op(types.KindCreateFolder, map[string]string{
		"folder_name": "reports",
		"location":    "desktop",
	}))

	target := filepath.Join(home, "Desktop", "reports")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, fmt.Sprintf("Created folder: %s", target), result.Message)
	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreateFolderAlreadyExists(t *testing.T) {
	p, home, _ := newTestProvider(t)

	target := filepath.Join(home, "Desktop", "reports")
	require.NoError(t, os.Mkdir(target, 0o755))

	result := p.CreateFolder(context.Background(), op(types.KindCreateFolder, map[string]string{
		"folder_name": "reports",
		"location":    "desktop",
	}))

	assert.False(t, result.Success)
	assert.Equal(t, fmt.Sprintf("Folder already exists: %s", target), result.Message)
}

func TestCreateFolderMissingName(t *testing.T) {
	p, _, _ := newTestProvider(t)

	result := p.CreateFolder(context.Background(), op(types.KindCreateFolder, nil))

	assert.False(t, result.Success)
	assert.Equal(t, "folder_name parameter required", result.Message)
}

func TestCreateFolderDefaultsToCurrent(t *testing.T) {
	p, home, _ := newTestProvider(t)

	result := p.CreateFolder(context.Background(), op(types.KindCreateFolder, map[string]string{
		"folder_name": "inbox",
	}))

	require.True(t, result.Success, result.Message)
	_, err := os.Stat(filepath.Join(home, "inbox"))
	assert.NoError(t, err)
}

func TestCreateFile(t *testing.T) {
	p, home, _ := newTestProvider(t)

	result := p.CreateFile(context.Background(), op(types.KindCreateFile, map[string]string{
		"file_name": "notes.txt",
		"location":  "documents",
		"content":   "hello",
	}))

	target := filepath.Join(home, "Documents", "notes.txt")
	require.True(t, result.Success, result.Message)
	assert.Equal(t, fmt.Sprintf("Created file: %s", target), result.Message)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCreateFileEmptyContent(t *testing.T) {
	p, home, _ := newTestProvider(t)

	result := p.CreateFile(context.Background(), op(types.KindCreateFile, map[string]string{
		"file_name": "empty.txt",
	}))

	require.True(t, result.Success, result.Message)
	data, err := os.ReadFile(filepath.Join(home, "empty.txt"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCreateFileAlreadyExists(t *testing.T) {
	p, home, _ := newTestProvider(t)

	target := filepath.Join(home, "Documents", "notes.txt")
	touch(t, target)

	result := p.CreateFile(context.Background(), op(types.KindCreateFile, map[string]string{
		"file_name": "notes.txt",
		"location":  "documents",
		"content":   "overwrite attempt",
	}))

	assert.False(t, result.Success)
	assert.Equal(t, fmt.Sprintf("File already exists: %s", target), result.Message)
	assert.Equal(t, true, result.Data["already_exists"])

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data), "existing content must survive")
}
