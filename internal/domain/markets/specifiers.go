package markets

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Well-known specifier keys.
const (
	SpecifierVariant = "variant"
	SpecifierScore   = "score"
)

const (
	pairSeparator     = "|"
	keyValueSeparator = "="
)

// ErrInvalidSpecifiers is returned when a specifier string cannot be split into key=value pairs.
var ErrInvalidSpecifiers = errors.New("invalid specifiers")

// ParseSpecifiers reads the feed form "total=2.5|hcp=-1" into a map.
func ParseSpecifiers(raw string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(raw) == "" {
		return out, nil
	}
	for _, pair := range strings.Split(raw, pairSeparator) {
		key, value, ok := strings.Cut(pair, keyValueSeparator)
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSpecifiers, pair)
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidSpecifiers, key)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// FormatSpecifiers renders specifiers in key order, the inverse of ParseSpecifiers.
func FormatSpecifiers(specifiers map[string]string) string {
	if len(specifiers) == 0 {
		return ""
	}
	keys := make([]string, 0, len(specifiers))
	for key := range specifiers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(pairSeparator)
		}
		b.WriteString(key)
		b.WriteString(keyValueSeparator)
		b.WriteString(specifiers[key])
	}
	return b.String()
}

// CloneSpecifiers copies a specifier map; nil stays nil.
func CloneSpecifiers(specifiers map[string]string) map[string]string {
	if specifiers == nil {
		return nil
	}
	out := make(map[string]string, len(specifiers))
	for key, value := range specifiers {
		out[key] = value
	}
	return out
}

// Variant returns the variant specifier, empty when the market has none.
func Variant(specifiers map[string]string) string {
	return specifiers[SpecifierVariant]
}
