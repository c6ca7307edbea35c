package cssmod

// Status is the outcome of processing one manifest entry
type Status int

const (
	// StatusConverted means the file had a CSS import and was rewritten.
	StatusConverted Status = iota
	// StatusSkipped means the file exists but has no CSS import; it is left untouched.
	StatusSkipped
	// StatusNotFound means the entry does not resolve to an existing file.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusSkipped:
		return "skipped"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// ImportReference is the CSS import found in a component file
type ImportReference struct {
	Path       string // "./Foo.css"
	ModulePath string // "./Foo.module.css"
}

// Conversion is the result of rewriting one file's text
type Conversion struct {
	Original      string
	Content       string
	Import        ImportReference
	Found         bool // A CSS import was found (content is only meaningful when true)
	CamelRewrites int  // className="foo-bar" occurrences
	BraceRewrites int  // className={'foo-bar'} occurrences
}

// Config holds converter configuration
type Config struct {
	Root             string   // "frontend/src"
	Files            []string // Manifest entries relative to Root (literal paths or globs)
	Quiet            bool     // Suppress status output
	ShowDiff         bool     // Print a line diff for each converted file
	RespectGitignore bool     // Drop gitignored glob matches (default: true)
	UseColors        bool     // Force color output (default: auto-detect)
}

// Target is one resolved manifest entry
type Target struct {
	Entry string // Name reported in status lines
	Path  string // Absolute or root-joined path
	Glob  bool   // Came from a glob pattern
}

// FileResult is the per-file outcome reported by the runner
type FileResult struct {
	Target  Target
	Status  Status
	Import  ImportReference
	Rewrite int        // className rewrites applied
	Diff    []DiffLine // Populated only when Config.ShowDiff is set
}

// RunResult contains run statistics
type RunResult struct {
	Results   []FileResult
	Converted int
	Skipped   int
	NotFound  int
}
