// Package paths maps human-friendly location names to absolute paths.
//
// This package defines the alias table seeded at startup from the
// platform's well-known directories, and the resolver that turns raw
// location tokens into absolute paths. Resolution is a pure path
// computation; whether a resolved location exists is the caller's
// concern, never the resolver's.
//
// # Usage
//
//	import "github.com/mohdjaved291/File-Commander/internal/shared/paths"
//
//	volumes := paths.VolumeRoots()
//	table := paths.NewTable(paths.Seed(home, moviesRoot, volumes))
//	resolver := paths.NewResolver(table, volumes)
//
//	dir := resolver.Resolve("desktop", cwd) // -> /home/user/Desktop
package paths
