package cssmod

import (
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"gitlab.com/tozd/go/errors"
)

// StyleClass is a class selector found in a stylesheet together with the
// property names the converter produces for it
type StyleClass struct {
	Name   string // "customer-list"
	Camel  string // "customerList"  (className="...")
	Braced string // "customer_list" (className={'...'})
}

// ParseClasses lexes CSS content and returns its class selectors in
// first-seen order, without duplicates.
func ParseClasses(content string) []StyleClass {
	lexer := css.NewLexer(parse.NewInputString(content))

	var classes []StyleClass
	seen := make(map[string]bool)

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		if tt != css.DelimToken || len(text) == 0 || text[0] != '.' {
			continue
		}

		tt, name := lexer.Next()
		if tt != css.IdentToken {
			continue
		}

		class := string(name)
		if seen[class] {
			continue
		}
		seen[class] = true
		classes = append(classes, StyleClass{
			Name:   class,
			Camel:  KebabToCamel(class),
			Braced: KebabToSnake(class),
		})
	}

	return classes
}

// ParseStylesheet reads and lexes a single CSS file
func ParseStylesheet(path string) ([]StyleClass, error) {
	// #nosec G304 - path is supplied by the user
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("read file: %w", err)
	}
	return ParseClasses(string(content)), nil
}
