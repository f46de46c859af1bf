// Package errors provides classified errors for SportCal: every failure
// carries a category (for transport mapping), a severity (for log level), an
// optional machine-readable code, and a structured context map identifying
// the offending field or value. Handlers never inspect error strings; they
// route on classification.
package errors
