package cssmod

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
)

// ErrNotText is returned when a file's content is not valid UTF-8.
var ErrNotText = errors.Base("file content is not valid UTF-8 text")

var (
	// Side-effect import of a stylesheet: import './Foo.css'
	cssImportPattern = regexp.MustCompile(`import ['"]([^'"]*\.css)['"]`)

	// className="customer-list"
	classNameQuoted = regexp.MustCompile(`className="([a-z][a-zA-Z0-9-]*)"`)

	// className={'main-layout'}
	classNameBraced = regexp.MustCompile(`className=\{'([a-z][a-zA-Z0-9-]*)'\}`)
)

// StylesIdent is the identifier the module import is bound to.
const StylesIdent = "styles"

// FindImport returns the first CSS import in content
func FindImport(content string) (ImportReference, bool) {
	m := cssImportPattern.FindStringSubmatch(content)
	if m == nil {
		return ImportReference{}, false
	}
	return ImportReference{
		Path:       m[1],
		ModulePath: strings.ReplaceAll(m[1], ".css", ".module.css"),
	}, true
}

// ConvertSource rewrites component source text to use CSS Modules.
// When no CSS import is present the returned Conversion has Found=false
// and Content equal to the input.
func ConvertSource(content string) Conversion {
	ref, ok := FindImport(content)
	if !ok {
		return Conversion{Original: content, Content: content}
	}

	conv := Conversion{Original: content, Import: ref, Found: true}

	// Every import of exactly this path, with either quote style
	importOfPath := regexp.MustCompile(`import ['"]` + regexp.QuoteMeta(ref.Path) + `['"]`)
	content = importOfPath.ReplaceAllLiteralString(content,
		"import "+StylesIdent+" from '"+ref.ModulePath+"'")

	content = classNameQuoted.ReplaceAllStringFunc(content, func(match string) string {
		conv.CamelRewrites++
		token := classNameQuoted.FindStringSubmatch(match)[1]
		return "className={" + StylesIdent + "." + KebabToCamel(token) + "}"
	})

	content = classNameBraced.ReplaceAllStringFunc(content, func(match string) string {
		conv.BraceRewrites++
		token := classNameBraced.FindStringSubmatch(match)[1]
		return "className={" + StylesIdent + "." + KebabToSnake(token) + "}"
	})

	conv.Content = content
	return conv
}

// KebabToCamel converts "customer-list" to "customerList".
// The first segment is kept as-is; later segments are capitalized
// (first letter upper, remainder lower): "a-bC-d" -> "aBcD".
func KebabToCamel(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) == 1 {
		return s
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString(capitalize(p))
	}
	return b.String()
}

// KebabToSnake converts "main-layout" to "main_layout".
func KebabToSnake(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Convert rewrites the file at path in place.
// It returns false, leaving the file untouched, when the file has no CSS import.
func Convert(path string) (bool, error) {
	conv, err := ConvertFile(path)
	if err != nil {
		return false, err
	}
	return conv.Found, nil
}

// ConvertFile is Convert returning the full Conversion, including the
// original text so callers never need a second read.
func ConvertFile(path string) (Conversion, error) {
	// #nosec G304 - path comes from the manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return Conversion{}, errors.Errorf("read file: %w", err)
	}
	if !utf8.Valid(data) {
		return Conversion{}, errors.WithStack(ErrNotText)
	}

	conv := ConvertSource(string(data))
	if !conv.Found {
		return conv, nil
	}

	// Write through symlinks so the link stays a link and its target is converted
	dest, err := filepath.EvalSymlinks(path)
	if err != nil {
		return Conversion{}, errors.Errorf("resolve symlinks: %w", err)
	}
	if err := writeFileAtomic(dest, []byte(conv.Content)); err != nil {
		return Conversion{}, err
	}
	return conv, nil
}

// writeFileAtomic replaces path with data via a temp file in the same
// directory, keeping the original permissions. path must not be a symlink.
func writeFileAtomic(path string, data []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// No-op once the rename has succeeded
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Errorf("replace %s: %w", path, err)
	}
	return nil
}
