package ops

import (
	"context"

	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

// clarification is the fixed reply for operations outside the catalog.
const clarification = "Sorry, I couldn't understand that command. Please try again."

// Definition returns the operation catalog with parameter schemas.
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "commander",
		Name:        "File Commander",
		Description: "Natural language file and folder operations",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"create", "rename", "move", "bulk_move", "open", "search", "play",
		},
		Tools: []types.Tool{
			{
				ID:          types.KindCreateFolder,
				Name:        "Create Folder",
				Description: "Create a new folder, including missing parents",
				Parameters: []types.Parameter{
					{Name: "folder_name", Type: "string", Description: "Folder name", Required: true},
					{Name: "location", Type: "string", Description: "Base location (default: current path)", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          types.KindCreateFile,
				Name:        "Create File",
				Description: "Create a new, optionally content-seeded file",
				Parameters: []types.Parameter{
					{Name: "file_name", Type: "string", Description: "File name", Required: true},
					{Name: "location", Type: "string", Description: "Base location (default: current path)", Required: false},
					{Name: "content", Type: "string", Description: "Initial content", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          types.KindRename,
				Name:        "Rename",
				Description: "Rename a file or folder under one location",
				Parameters: []types.Parameter{
					{Name: "old_name", Type: "string", Description: "Existing name", Required: true},
					{Name: "new_name", Type: "string", Description: "New name", Required: true},
					{Name: "location", Type: "string", Description: "Base location (default: current path)", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          types.KindMove,
				Name:        "Move",
				Description: "Move a file or folder to a new location",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path or alias", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path or alias", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          types.KindMoveAll,
				Name:        "Move All Files",
				Description: "Move every file from one directory into another",
				Parameters: []types.Parameter{
					{Name: "source_dir", Type: "string", Description: "Source directory", Required: true},
					{Name: "destination_dir", Type: "string", Description: "Destination directory", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          types.KindOpenLocation,
				Name:        "Open File Explorer",
				Description: "Open a file manager view at a location",
				Parameters: []types.Parameter{
					{Name: "location", Type: "string", Description: "Location (default: current path)", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          types.KindSearch,
				Name:        "Search Files",
				Description: "Find up to 10 files whose name contains a term",
				Parameters: []types.Parameter{
					{Name: "search_term", Type: "string", Description: "Term or glob pattern", Required: true},
					{Name: "search_path", Type: "string", Description: "Root to search (default: current path)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          types.KindPlayBestMatch,
				Name:        "Play Movie",
				Description: "Play the best-matching movie with the default player",
				Parameters: []types.Parameter{
					{Name: "movie_name", Type: "string", Description: "Movie name", Required: true},
				},
				Returns: "string",
			},
		},
	}
}

// Execute dispatches one operation to its handler. Unrecognized kinds
// yield the fixed clarification result; this path never faults.
func (p *Provider) Execute(ctx context.Context, op types.Operation) *types.Result {
	switch op.Kind {
	case types.KindCreateFolder:
		return p.CreateFolder(ctx, op)
	case types.KindCreateFile:
		return p.CreateFile(ctx, op)
	case types.KindRename:
		return p.Rename(ctx, op)
	case types.KindMove:
		return p.Move(ctx, op)
	case types.KindMoveAll:
		return p.MoveAll(ctx, op)
	case types.KindOpenLocation:
		return p.OpenLocation(ctx, op)
	case types.KindSearch:
		return p.Search(ctx, op)
	case types.KindPlayBestMatch:
		return p.PlayBestMatch(ctx, op)
	case types.KindUnrecognized:
		return Failure(clarification)
	default:
		// Kind is a string type; values outside the enum land here
		return Failure(clarification)
	}
}
