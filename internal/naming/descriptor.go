package naming

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	placeholderOpen  = '{'
	placeholderClose = '}'
)

// Template is a name descriptor split into literal text and placeholders.
type Template struct {
	// Format is the descriptor with the i-th placeholder replaced by "{i}".
	Format string
	// Placeholders holds each placeholder verbatim, braces included, in order of appearance.
	Placeholders []string

	literals []string
}

// ParseDescriptor scans a descriptor such as "Total {total} ({$competitor1})".
// A '}' with no preceding '{' is a parsing error; nesting is not supported,
// so the first '}' closes the open placeholder.
func ParseDescriptor(descriptor string) (Template, error) {
	var (
		tmpl   Template
		format strings.Builder
		cursor int
	)
	for cursor < len(descriptor) {
		rest := descriptor[cursor:]
		open := strings.IndexByte(rest, placeholderOpen)
		closing := strings.IndexByte(rest, placeholderClose)
		if open < 0 && closing < 0 {
			break
		}
		if open < 0 || closing < 0 || closing < open {
			return Template{}, fmt.Errorf("%w: unbalanced placeholder braces at offset %d of %q", ErrParsing, cursor, descriptor)
		}

		literal := rest[:open]
		tmpl.literals = append(tmpl.literals, literal)
		format.WriteString(literal)
		format.WriteByte(placeholderOpen)
		format.WriteString(strconv.Itoa(len(tmpl.Placeholders)))
		format.WriteByte(placeholderClose)
		tmpl.Placeholders = append(tmpl.Placeholders, rest[open:closing+1])
		cursor += closing + 1
	}

	tail := descriptor[cursor:]
	tmpl.literals = append(tmpl.literals, tail)
	format.WriteString(tail)
	tmpl.Format = format.String()
	return tmpl, nil
}

// Assemble substitutes values positionally. A placeholder without a value keeps its original text.
func (t Template) Assemble(values []string) string {
	if len(t.literals) == 0 {
		return t.Format
	}
	var b strings.Builder
	for i, literal := range t.literals {
		b.WriteString(literal)
		if i >= len(t.Placeholders) {
			continue
		}
		if i < len(values) {
			b.WriteString(values[i])
		} else {
			b.WriteString(t.Placeholders[i])
		}
	}
	return b.String()
}
