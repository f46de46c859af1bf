package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

func TestDefaultTitleLocales(t *testing.T) {
	cases := []struct {
		locale string
		typ    calendar.ExerciseType
		want   string
	}{
		{"en", calendar.TypeRun, "run training"},
		{"en", calendar.TypeStrength, "strength training"},
		{"ru", calendar.TypeRun, "run тренировка"},
		{"ru", calendar.TypeYoga, "yoga тренировка"},
		// Malformed locales fall back to English.
		{"not a locale", calendar.TypeBike, "bike training"},
	}
	for _, tc := range cases {
		got := NewTitler(tc.locale).DefaultTitle(tc.typ)
		assert.Equal(t, tc.want, got, "locale %s type %s", tc.locale, tc.typ)
	}
}
