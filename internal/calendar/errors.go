package calendar

import ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"

// Stable machine-readable codes for validation failures. Every 4xx outcome of
// the core maps to exactly one of these (NotFound is raised by the storage
// layer, not here).
const (
	CodeInvalidFormat   ferrors.ErrorCode = "invalid_format"
	CodeInvalidRange    ferrors.ErrorCode = "invalid_range"
	CodeUnsupportedType ferrors.ErrorCode = "unsupported_type"
	CodeInvalidTarget   ferrors.ErrorCode = "invalid_target"
	CodeInvalidProgress ferrors.ErrorCode = "invalid_progress"
)
