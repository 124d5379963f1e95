// Package i18n renders placement failures and setup notices in the
// player's locale.
package i18n

import (
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/battleship-setup/internal/error"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// DefaultLocale is used when the requested locale is empty or unparsable.
const DefaultLocale = "en-US"

const (
	KeyPlayerReady  = "PlayerReady"
	KeyShipPlaced   = "ShipPlaced"
	KeyReadyToStart = "ReadyToStart"
)

var (
	supportedTags = []language.Tag{language.English, language.French}
	matcher       = language.NewMatcher(supportedTags)
	builder       = mustBuildCatalog()
)

func mustBuildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range map[language.Tag]map[string]string{
		language.English: enMessages,
		language.French:  frMessages,
	} {
		for key, msg := range messages {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("register %s message %q: %v", tag, key, err))
			}
		}
	}
	return b
}

// Tag resolves a locale string such as "fr-CA" to the closest supported
// language, defaulting to English.
func Tag(locale string) language.Tag {
	if locale == "" {
		locale = DefaultLocale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return language.English
	}
	return supportedTags[index]
}

func printer(locale string) *message.Printer {
	return message.NewPrinter(Tag(locale), message.Catalog(builder))
}

// Localize returns the user-facing text for err. Placement failures are
// looked up in the catalog, anything else falls back to err.Error().
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}

	var placementErr cerr.PlacementErr
	if !errors.As(err, &placementErr) {
		return err.Error()
	}
	return printer(locale).Sprintf(placementErr.Key(), placementErr.Args()...)
}

// Message formats a non-error catalog entry such as KeyPlayerReady.
func Message(locale, key string, args ...interface{}) string {
	return printer(locale).Sprintf(key, args...)
}
