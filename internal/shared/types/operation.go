package types

// Kind identifies one of the supported operation kinds.
type Kind string

const (
	KindCreateFolder  Kind = "create_folder"
	KindCreateFile    Kind = "create_file"
	KindRename        Kind = "rename_item"
	KindMove          Kind = "move_item"
	KindMoveAll       Kind = "move_all_files"
	KindOpenLocation  Kind = "open_file_explorer"
	KindSearch        Kind = "search_files"
	KindPlayBestMatch Kind = "play_movie"

	// KindUnrecognized is the catch-all for anything the interpreter
	// produced outside the fixed catalog. It is the only representation
	// of an unknown operation; free-form kinds never reach dispatch.
	KindUnrecognized Kind = "unrecognized"
)

// Kinds returns the dispatchable operation kinds in catalog order.
func Kinds() []Kind {
	return []Kind{
		KindCreateFolder,
		KindCreateFile,
		KindRename,
		KindMove,
		KindMoveAll,
		KindOpenLocation,
		KindSearch,
		KindPlayBestMatch,
	}
}

// ParseKind maps an interpreter-provided operation name to a Kind.
// Unknown names become KindUnrecognized rather than an error.
func ParseKind(s string) Kind {
	switch k := Kind(s); k {
	case KindCreateFolder, KindCreateFile, KindRename, KindMove,
		KindMoveAll, KindOpenLocation, KindSearch, KindPlayBestMatch:
		return k
	default:
		return KindUnrecognized
	}
}

// Operation is a single planned step with its named parameters.
type Operation struct {
	Kind   Kind              `json:"operation"`
	Params map[string]string `json:"parameters,omitempty"`
}

// Param returns a named parameter, empty string when absent.
func (o Operation) Param(key string) string {
	return o.Params[key]
}

// Plan is an ordered sequence of operations. A single-operation command
// is a plan of length one. Order is significant and preserved.
type Plan struct {
	Operations []Operation `json:"operations"`
}

// Single wraps one operation into a plan.
func Single(op Operation) Plan {
	return Plan{Operations: []Operation{op}}
}

// Empty reports whether the plan carries no operations.
func (p Plan) Empty() bool {
	return len(p.Operations) == 0
}

// Result is the outcome of one executed operation. Exactly one is
// produced per step, failure included; Message is always populated.
type Result struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
