// Package cssmod migrates React components from global CSS class strings to
// CSS Modules.
//
// For each file it rewrites the side-effect stylesheet import into a
// scoped import and turns className literals into property accesses on it:
//
//	import './CustomerList.css'           → import styles from './CustomerList.module.css'
//	className="customer-list"             → className={styles.customerList}
//	className={'main-layout'}             → className={styles.main_layout}
//
// The double-quoted form is camelCased while the braced single-quoted form
// only swaps hyphens for underscores. Files without a CSS import are left
// byte-identical.
//
// # Library
//
//	converted, err := cssmod.Convert("src/pages/Dashboard.jsx")
//
//	result, err := cssmod.Run(ctx, cssmod.Config{
//		Root:  "frontend/src",
//		Files: []string{"pages/*.jsx", "components/shared/MainLayout.jsx"},
//	}, os.Stdout)
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssmod/cmd/cssmod@latest
package cssmod

import (
	"context"
	"io"

	"github.com/yacobolo/cssmod/internal/cssmod"
)

type (
	// Config holds converter configuration.
	Config = cssmod.Config
	// RunResult contains per-file outcomes and counts.
	RunResult = cssmod.RunResult
	// Conversion is the result of rewriting one file's text.
	Conversion = cssmod.Conversion
)

// Convert rewrites the file at path in place and reports whether it had a
// CSS import. Files without one are not written.
func Convert(path string) (bool, error) {
	return cssmod.Convert(path)
}

// ConvertSource rewrites component source text without touching disk.
func ConvertSource(content string) Conversion {
	return cssmod.ConvertSource(content)
}

// Run processes config.Files under config.Root in order and writes one status
// line per file plus a total to w. A nil w disables output.
func Run(ctx context.Context, config Config, w io.Writer) (*RunResult, error) {
	var rep *cssmod.Reporter
	if w != nil {
		rep = cssmod.NewReporter(w, config)
	}
	return cssmod.Run(ctx, config, rep)
}
