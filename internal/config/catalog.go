package config

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// CatalogConfig controls where names are loaded from and how often.
type CatalogConfig struct {
	Source          string // fixture or catalog
	Path            string // root of the YAML catalog
	Locales         []language.Tag
	RefreshInterval time.Duration
}

func loadCatalog(defaultLocale language.Tag) CatalogConfig {
	source := strings.ToLower(envOrDefault(envCatalogSource, defaultCatalogSource))
	if source != SourceFixture && source != SourceCatalog {
		source = defaultCatalogSource
	}
	return CatalogConfig{
		Source:          source,
		Path:            envOrDefault(envCatalogPath, defaultCatalogPath),
		Locales:         withLocale(localesEnvOrDefault(envCatalogLocales, defaultCatalogLocales), defaultLocale),
		RefreshInterval: durationEnvOrDefault(envCatalogRefresh, defaultCatalogRefresh),
	}
}

// withLocale makes sure the default locale is always loaded.
func withLocale(locales []language.Tag, locale language.Tag) []language.Tag {
	for _, l := range locales {
		if l == locale {
			return locales
		}
	}
	return append([]language.Tag{locale}, locales...)
}
