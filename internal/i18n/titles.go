// Package i18n provides localized default titles for exercises created
// without one.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

func init() {
	// The activity type itself stays in its lowercase wire form; only the
	// "training" word is localized.
	_ = message.SetString(language.English, "%s training", "%s training")
	_ = message.SetString(language.Russian, "%s training", "%s тренировка")
}

// Titler renders default exercise titles for a fixed locale.
type Titler struct {
	printer *message.Printer
}

// NewTitler creates a Titler for the given BCP 47 locale tag (e.g. "en",
// "ru"). Unknown tags fall back to English via the catalog matcher.
func NewTitler(locale string) *Titler {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Titler{printer: message.NewPrinter(tag)}
}

// DefaultTitle returns the localized "<type> training" default.
func (t *Titler) DefaultTitle(typ calendar.ExerciseType) string {
	return t.printer.Sprintf("%s training", string(typ))
}
