package calendar

import (
	"strings"
	"time"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
)

// ExerciseType is the closed set of plannable activities. Input is accepted
// case-insensitively; the stored form is always the lowercase constant.
type ExerciseType string

const (
	TypeRun      ExerciseType = "run"
	TypeBike     ExerciseType = "bike"
	TypeSwim     ExerciseType = "swim"
	TypeYoga     ExerciseType = "yoga"
	TypeStrength ExerciseType = "strength"
)

// ExerciseTypes lists every supported activity type.
func ExerciseTypes() []ExerciseType {
	return []ExerciseType{TypeRun, TypeBike, TypeSwim, TypeYoga, TypeStrength}
}

// ParseExerciseType normalizes raw input (trim + lowercase) and maps it onto
// the closed type set.
func ParseExerciseType(s string) (ExerciseType, error) {
	switch ExerciseType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeRun:
		return TypeRun, nil
	case TypeBike:
		return TypeBike, nil
	case TypeSwim:
		return TypeSwim, nil
	case TypeYoga:
		return TypeYoga, nil
	case TypeStrength:
		return TypeStrength, nil
	default:
		return "", ferrors.ValidationError("unsupported activity type").
			WithCode(CodeUnsupportedType).
			WithContext("field", "type").
			WithContext("value", s).
			Build()
	}
}

// Exercise is one planned activity on one calendar day. ID, Day, Type, and
// Target are fixed at creation; only Progress and UpdatedAt change afterwards.
type Exercise struct {
	ID        uuid.UUID
	Day       Date
	Type      ExerciseType
	Title     string
	Target    float64
	Progress  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ClampProgress reduces a caller-supplied progress value into [0, target].
// Overflow is reduced silently rather than rejected, matching the update
// semantics of the API.
func ClampProgress(progress, target float64) float64 {
	if progress < 0 {
		return 0
	}
	if progress > target {
		return target
	}
	return progress
}
