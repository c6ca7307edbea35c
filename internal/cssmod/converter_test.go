package cssmod

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestKebabToCamel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"loading", "loading"},
		{"customer-list", "customerList"},
		{"a-b-c", "aBC"},
		{"empty-state-message", "emptyStateMessage"},
		{"fooBar-baz", "fooBarBaz"},    // first segment kept as-is
		{"nav-ITEM", "navItem"},        // later segments are capitalized
		{"btn--primary", "btnPrimary"}, // empty segment contributes nothing
		{"col-2-wide", "col2Wide"},
		{"trailing-", "trailing"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, KebabToCamel(tt.input))
		})
	}
}

func TestKebabToSnake(t *testing.T) {
	assert.Equal(t, "main_layout", KebabToSnake("main-layout"))
	assert.Equal(t, "a_b", KebabToSnake("a-b"))
	assert.Equal(t, "plain", KebabToSnake("plain"))
}

func TestFindImport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    ImportReference
		found   bool
	}{
		{
			name:    "single quotes",
			content: "import React from 'react';\nimport './Foo.css';\n",
			want:    ImportReference{Path: "./Foo.css", ModulePath: "./Foo.module.css"},
			found:   true,
		},
		{
			name:    "double quotes",
			content: `import "../../styles/CustomerList.css";`,
			want:    ImportReference{Path: "../../styles/CustomerList.css", ModulePath: "../../styles/CustomerList.module.css"},
			found:   true,
		},
		{
			name:    "first import wins",
			content: "import './a.css';\nimport './b.css';\n",
			want:    ImportReference{Path: "./a.css", ModulePath: "./a.module.css"},
			found:   true,
		},
		{
			name:    "css earlier in path is also replaced",
			content: "import './.css/x.css';",
			want:    ImportReference{Path: "./.css/x.css", ModulePath: "./.module.css/x.module.css"},
			found:   true,
		},
		{
			name:    "default import is not a side-effect import",
			content: "import styles from './Foo.module.css';",
			found:   false,
		},
		{
			name:    "no css import",
			content: "import React from 'react';",
			found:   false,
		},
		{
			name:    "case sensitive extension",
			content: "import './Foo.CSS';",
			found:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindImport(tt.content)
			require.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertSource(t *testing.T) {
	t.Run("camel case for double-quoted className", func(t *testing.T) {
		in := "import './Foo.css';\n<div className=\"customer-list\">\n"
		conv := ConvertSource(in)

		require.True(t, conv.Found)
		assert.Equal(t, "import styles from './Foo.module.css';\n<div className={styles.customerList}>\n", conv.Content)
		assert.Equal(t, in, conv.Original)
		assert.Equal(t, 1, conv.CamelRewrites)
		assert.Equal(t, 0, conv.BraceRewrites)
	})

	t.Run("underscores for braced single-quoted className", func(t *testing.T) {
		in := "import './Bar.css';\n<main className={'main-layout'}>\n"
		conv := ConvertSource(in)

		require.True(t, conv.Found)
		assert.Equal(t, "import styles from './Bar.module.css';\n<main className={styles.main_layout}>\n", conv.Content)
		assert.Equal(t, 1, conv.BraceRewrites)
	})

	t.Run("the two forms use different casing rules", func(t *testing.T) {
		in := "import './X.css';\n<a className=\"a-b\" />\n<b className={'a-b'} />\n"
		conv := ConvertSource(in)

		assert.Contains(t, conv.Content, "className={styles.aB}")
		assert.Contains(t, conv.Content, "className={styles.a_b}")
		assert.NotContains(t, conv.Content, "className={styles.a_B}")
	})

	t.Run("double-quoted import path is rewritten with single quotes", func(t *testing.T) {
		conv := ConvertSource(`import "./Foo.css";`)
		assert.Equal(t, `import styles from './Foo.module.css';`, conv.Content)
	})

	t.Run("all imports of the same path are rewritten", func(t *testing.T) {
		conv := ConvertSource("import './a.css';\nimport \"./a.css\";\nimport './b.css';\n")
		assert.Equal(t,
			"import styles from './a.module.css';\nimport styles from './a.module.css';\nimport './b.css';\n",
			conv.Content)
	})

	t.Run("tokens outside the pattern are left alone", func(t *testing.T) {
		in := "import './Foo.css';\n" +
			"<div className=\"btn primary\">\n" + // space
			"<div className=\"Upper\">\n" + // leading uppercase
			"<div className=\"has_underscore\">\n" +
			"<div className={isActive ? 'a' : 'b'}>\n" +
			"<div className={`tpl-${x}`}>\n"
		conv := ConvertSource(in)

		require.True(t, conv.Found)
		assert.Equal(t, 0, conv.CamelRewrites)
		assert.Equal(t, 0, conv.BraceRewrites)
		want := strings.Replace(in, "import './Foo.css'", "import styles from './Foo.module.css'", 1)
		assert.Equal(t, want, conv.Content)
	})

	t.Run("no import leaves content untouched", func(t *testing.T) {
		in := "<div className=\"customer-list\">\n"
		conv := ConvertSource(in)

		assert.False(t, conv.Found)
		assert.Equal(t, in, conv.Content)
		assert.Equal(t, 0, conv.CamelRewrites)
	})

	t.Run("replacement text is literal", func(t *testing.T) {
		conv := ConvertSource("import './$1.css';")
		assert.Equal(t, "import styles from './$1.module.css';", conv.Content)
	})
}

func TestConvert(t *testing.T) {
	t.Run("scenario: converts import and className", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "CustomerList.jsx",
			"import './Foo.css';\n\nexport default function CustomerList() {\n  return <div className=\"customer-list\" />;\n}\n")

		converted, err := Convert(path)
		require.NoError(t, err)
		assert.True(t, converted)

		got := readFile(t, path)
		assert.Contains(t, got, "import styles from './Foo.module.css'")
		assert.Contains(t, got, "className={styles.customerList}")
		assert.NotContains(t, got, "'./Foo.css'")
	})

	t.Run("scenario: braced form uses underscores", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "MainLayout.jsx",
			"import './Bar.css';\n<div className={'main-layout'}>\n")

		converted, err := Convert(path)
		require.NoError(t, err)
		assert.True(t, converted)
		assert.Contains(t, readFile(t, path), "className={styles.main_layout}")
	})

	t.Run("scenario: no import leaves file byte-identical", func(t *testing.T) {
		dir := t.TempDir()
		content := "import React from 'react';\r\n<div className=\"customer-list\">\r\n"
		path := writeFile(t, dir, "Plain.jsx", content)
		before, err := os.Stat(path)
		require.NoError(t, err)

		converted, err := Convert(path)
		require.NoError(t, err)
		assert.False(t, converted)
		assert.Equal(t, content, readFile(t, path))

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "Page.jsx",
			"import './Page.css';\n<div className=\"page-header\">\n")

		converted, err := Convert(path)
		require.NoError(t, err)
		require.True(t, converted)
		first := readFile(t, path)

		// Left-over token the first pass could not rewrite must stay as-is
		require.NoError(t, os.WriteFile(path, []byte(first+"<p className=\"late-token\">\n"), 0644))

		converted, err = Convert(path)
		require.NoError(t, err)
		assert.False(t, converted)
		assert.Equal(t, first+"<p className=\"late-token\">\n", readFile(t, path))
		assert.NotContains(t, readFile(t, path), ".module.module.css")
	})

	t.Run("keeps file permissions and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "Exec.jsx", "import './Exec.css';\n")
		require.NoError(t, os.Chmod(path, 0600))

		_, err := Convert(path)
		require.NoError(t, err)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("writes through a symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := writeFile(t, dir, "shared/Real.jsx", "import './Real.css';\n<div className=\"a-b\" />\n")
		link := filepath.Join(dir, "Link.jsx")
		require.NoError(t, os.Symlink(filepath.Join("shared", "Real.jsx"), link))

		converted, err := Convert(link)
		require.NoError(t, err)
		assert.True(t, converted)

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "link replaced by a regular file")

		want := "import styles from './Real.module.css';\n<div className={styles.aB} />\n"
		assert.Equal(t, want, readFile(t, target))
		assert.Equal(t, want, readFile(t, link))

		// Temp files go next to the target and are cleaned up
		entries, err := os.ReadDir(filepath.Join(dir, "shared"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		converted, err = Convert(link)
		require.NoError(t, err)
		assert.False(t, converted)
	})

	t.Run("invalid UTF-8 is an error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "binary.jsx")
		original := []byte{'i', 'm', 'p', 0xff, 0xfe, '\n'}
		require.NoError(t, os.WriteFile(path, original, 0644))

		_, err := Convert(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotText)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, original, data)
	})

	t.Run("directory is an error", func(t *testing.T) {
		_, err := Convert(t.TempDir())
		assert.Error(t, err)
	})
}
