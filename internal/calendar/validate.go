package calendar

import (
	"strings"

	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
)

// CreateRequest carries the raw creation payload before validation. Progress
// is deliberately absent: new exercises always start at zero.
type CreateRequest struct {
	Date   string
	Type   string
	Title  string
	Target float64
}

// ValidatedCreate is the outcome of a successful creation validation.
type ValidatedCreate struct {
	Day    Date
	Type   ExerciseType
	Title  string // trimmed; empty means "apply the localized default"
	Target float64
}

// ValidateCreate checks a creation payload field by field and fails fast on
// the first violation. It does not touch storage.
func ValidateCreate(req CreateRequest) (ValidatedCreate, error) {
	day, err := ParseDate(req.Date)
	if err != nil {
		return ValidatedCreate{}, withField(err, "date")
	}

	typ, err := ParseExerciseType(req.Type)
	if err != nil {
		return ValidatedCreate{}, err
	}

	if req.Target <= 0 {
		return ValidatedCreate{}, ferrors.ValidationError("target must be greater than zero").
			WithCode(CodeInvalidTarget).
			WithContext("field", "target").
			Build()
	}

	return ValidatedCreate{
		Day:    day,
		Type:   typ,
		Title:  strings.TrimSpace(req.Title),
		Target: req.Target,
	}, nil
}

// ValidateProgress rejects negative progress values. Clamping against the
// exercise's target happens later, once the target is known.
func ValidateProgress(progress float64) error {
	if progress < 0 {
		return ferrors.ValidationError("progress must be greater than or equal to zero").
			WithCode(CodeInvalidProgress).
			WithContext("field", "progress").
			Build()
	}
	return nil
}

// ValidateRange parses both bounds and enforces from <= to. Equal bounds are
// a valid single-day range.
func ValidateRange(from, to string) (Date, Date, error) {
	fromDate, err := ParseDate(from)
	if err != nil {
		return Date{}, Date{}, withField(err, "from")
	}
	toDate, err := ParseDate(to)
	if err != nil {
		return Date{}, Date{}, withField(err, "to")
	}
	if fromDate.After(toDate) {
		return Date{}, Date{}, ferrors.ValidationError("'from' must be less than or equal to 'to'").
			WithCode(CodeInvalidRange).
			WithContext("from", from).
			WithContext("to", to).
			Build()
	}
	return fromDate, toDate, nil
}

// withField annotates a classified error with the offending field name.
func withField(err error, field string) error {
	if c, ok := ferrors.AsClassified(err); ok {
		return c.WithContext("field", field)
	}
	return err
}
