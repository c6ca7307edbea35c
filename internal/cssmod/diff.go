package cssmod

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp marks a line as removed or added
type DiffOp int

// Line diff operations
const (
	DiffRemoved DiffOp = iota
	DiffAdded
)

// DiffLine is one changed line between the original and converted text
type DiffLine struct {
	Op   DiffOp
	Line int // 1-based line number in the old (removed) or new (added) text
	Text string
}

// LineDiff returns the changed lines between before and after.
// Unchanged lines are omitted.
func LineDiff(before, after string) []DiffLine {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out []DiffLine
	oldLine, newLine := 1, 1
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				oldLine++
				newLine++
			case diffmatchpatch.DiffDelete:
				out = append(out, DiffLine{Op: DiffRemoved, Line: oldLine, Text: text})
				oldLine++
			case diffmatchpatch.DiffInsert:
				out = append(out, DiffLine{Op: DiffAdded, Line: newLine, Text: text})
				newLine++
			}
		}
	}
	return out
}

// splitLines splits a diff chunk into lines without the trailing newline
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
