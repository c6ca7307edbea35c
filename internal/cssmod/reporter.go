package cssmod

import (
	"fmt"
	"io"
	"os"
)

// Reporter prints per-file status lines and the run summary
type Reporter struct {
	w         io.Writer
	useColors bool
	quiet     bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
		quiet:     config.Quiet,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// FileDone prints the status line for one file, followed by its diff if any
func (r *Reporter) FileDone(res FileResult) {
	if r.quiet {
		return
	}

	switch res.Status {
	case StatusConverted:
		fmt.Fprintf(r.w, "%s Converted: %s\n", RenderStyle(StyleGreen, "✓", r.useColors), res.Target.Entry)
	case StatusSkipped:
		fmt.Fprintf(r.w, "%s Skipped (no CSS import): %s\n", RenderStyle(StyleYellow, "-", r.useColors), res.Target.Entry)
	case StatusNotFound:
		fmt.Fprintf(r.w, "%s Not found: %s\n", RenderStyle(StyleRed, "✗", r.useColors), res.Target.Entry)
	}

	for _, line := range res.Diff {
		r.printDiffLine(line)
	}
}

func (r *Reporter) printDiffLine(line DiffLine) {
	num := RenderStyle(StyleGray, fmt.Sprintf("%4d", line.Line), r.useColors)
	switch line.Op {
	case DiffRemoved:
		fmt.Fprintf(r.w, "\t%s %s\n", num, RenderStyle(StyleRed, "- "+line.Text, r.useColors))
	case DiffAdded:
		fmt.Fprintf(r.w, "\t%s %s\n", num, RenderStyle(StyleGreen, "+ "+line.Text, r.useColors))
	}
}

// PrintSummary outputs the converted count
func (r *Reporter) PrintSummary(result RunResult) {
	if r.quiet {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, fmt.Sprintf("Total converted: %d", result.Converted), r.useColors))
}

// PrintClasses lists a stylesheet's classes with the accessors the converter
// would produce for them
func (r *Reporter) PrintClasses(path string, classes []StyleClass) {
	if r.quiet {
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, path, r.useColors))
	if len(classes) == 0 {
		fmt.Fprintln(r.w, "  (no class selectors)")
		return
	}

	nameWidth, camelWidth := 0, 0
	for _, c := range classes {
		nameWidth = max(nameWidth, len(c.Name))
		camelWidth = max(camelWidth, len(c.Camel))
	}

	for _, c := range classes {
		fmt.Fprintf(r.w, "  %-*s  %s.%-*s  %s.%s\n",
			nameWidth, c.Name,
			StylesIdent, camelWidth, c.Camel,
			StylesIdent, c.Braced)
	}
}
