package catalog

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
)

const (
	dirMarkets  = "markets"
	dirProfiles = "profiles"
	eventsFile  = "events.yaml"
)

// MarketsPath builds the path to the market descriptions of a locale.
func MarketsPath(basePath string, locale language.Tag) string {
	return filepath.Join(basePath, dirMarkets, fmt.Sprintf("%s.yaml", locale))
}

// ProfilesPath builds the path to the competitor profiles of a locale.
func ProfilesPath(basePath string, locale language.Tag) string {
	return filepath.Join(basePath, dirProfiles, fmt.Sprintf("%s.yaml", locale))
}

// EventsPath builds the path to the sport events file.
func EventsPath(basePath string) string {
	return filepath.Join(basePath, eventsFile)
}
