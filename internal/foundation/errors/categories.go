package errors

import "maps"

// ErrorCategory is the broad classification used for routing and HTTP status
// mapping.
type ErrorCategory string

const (
	// CategoryValidation covers malformed or rejected request input.
	CategoryValidation ErrorCategory = "validation"
	// CategoryNotFound covers lookups of unknown entities.
	CategoryNotFound ErrorCategory = "not_found"
	// CategoryConfig covers bad service configuration.
	CategoryConfig ErrorCategory = "config"
	// CategoryStorage covers persistence failures.
	CategoryStorage ErrorCategory = "storage"
	// CategoryEvents covers event publishing failures.
	CategoryEvents ErrorCategory = "events"
	// CategoryInternal covers everything unexpected.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// ErrorCode is a stable machine-readable identifier for a specific failure
// kind within a category. Domain packages define their own code constants.
type ErrorCode string

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		return other
	}
	if other == nil {
		return c
	}
	result := make(ErrorContext)
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}
