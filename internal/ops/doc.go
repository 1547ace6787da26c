// Package ops implements the fixed catalog of file and folder
// operations: create, rename, move, bulk move, open location, bounded
// search, and best-match media playback.
//
// The Provider dispatches a planned operation to its handler. Every
// handler is total: filesystem failures are converted into a Result
// with a descriptive message and never propagate past the handler
// boundary.
package ops
