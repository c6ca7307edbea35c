package cssmod

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"gitlab.com/tozd/go/errors"
)

// DefaultFiles are the components migrated by default, relative to the root.
var DefaultFiles = []string{
	"pages/CustomersPage.jsx",
	"pages/UsersPage.jsx",
	"pages/Dashboard.jsx",
	"pages/LoginPage.jsx",
	"components/features/CustomerList.jsx",
	"components/features/CustomerForm.jsx",
	"components/features/UserList.jsx",
	"components/features/UserForm.jsx",
	"components/shared/MainLayout.jsx",
}

// isGlob reports whether entry should be expanded rather than used as a path
func isGlob(entry string) bool {
	for i := 0; i < len(entry); i++ {
		switch entry[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// loadGitIgnore loads root/.gitignore.
// Gracefully degrades to nil if it doesn't exist.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ResolveTargets turns manifest entries into an ordered, deduplicated list
// of targets. Literal entries are kept even if they don't exist so the runner
// can report them; globs are expanded against root.
func ResolveTargets(root string, entries []string, respectGitignore bool) ([]Target, error) {
	var gi *ignore.GitIgnore
	if respectGitignore {
		gi = loadGitIgnore(root)
	}

	targets := make([]Target, 0, len(entries))
	seen := make(map[string]bool)

	add := func(t Target) {
		key := filepath.Clean(t.Path)
		if seen[key] {
			return
		}
		seen[key] = true
		targets = append(targets, t)
	}

	for _, entry := range entries {
		if !isGlob(entry) {
			add(Target{Entry: entry, Path: filepath.Join(root, entry)})
			continue
		}

		// doublestar wants forward slashes in the pattern and returns
		// matches relative to the filesystem root
		matches, err := doublestar.Glob(os.DirFS(root), filepath.ToSlash(entry))
		if err != nil {
			return nil, errors.Errorf("glob pattern %q: %w", entry, err)
		}
		sort.Strings(matches)

		found := 0
		for _, match := range matches {
			full := filepath.Join(root, filepath.FromSlash(match))
			info, err := os.Stat(full)
			if err != nil || info.IsDir() {
				continue
			}
			if gi != nil && gi.MatchesPath(match) {
				continue
			}
			found++
			add(Target{Entry: match, Path: full, Glob: true})
		}

		if found == 0 {
			// Reported as not found under the pattern's own name
			add(Target{Entry: entry, Path: filepath.Join(root, entry), Glob: true})
		}
	}

	return targets, nil
}
