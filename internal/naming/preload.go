package naming

import (
	"sync"

	"golang.org/x/text/language"
)

// localeSet remembers the locales for which competitor profiles were preloaded.
type localeSet struct {
	mu   sync.Mutex
	seen map[language.Tag]struct{}
}

func newLocaleSet() *localeSet {
	return &localeSet{seen: make(map[language.Tag]struct{})}
}

// markIfAbsent adds locale and reports whether it was new.
func (s *localeSet) markIfAbsent(locale language.Tag) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[locale]; ok {
		return false
	}
	s.seen[locale] = struct{}{}
	return true
}
