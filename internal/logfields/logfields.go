// Package logfields defines canonical log field name constants and slog.Attr
// helpers to avoid key drift across packages.
package logfields

import "log/slog"

// Canonical log field name constants.
const (
	KeyMethod     = "method"
	KeyPath       = "path"
	KeyStatus     = "status"
	KeyDurationMS = "duration_ms"
	KeyUserAgent  = "user_agent"
	KeyRemoteAddr = "remote_addr"
	KeyError      = "error"
	KeyExerciseID = "exercise_id"
	KeyDay        = "day"
	KeyType       = "exercise_type"
	KeyFrom       = "from"
	KeyTo         = "to"
	KeyCount      = "count"
	KeyPort       = "port"
	KeySubject    = "subject"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Method(m string) slog.Attr       { return slog.String(KeyMethod, m) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Status(code int) slog.Attr       { return slog.Int(KeyStatus, code) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func UserAgent(ua string) slog.Attr   { return slog.String(KeyUserAgent, ua) }
func RemoteAddr(a string) slog.Attr   { return slog.String(KeyRemoteAddr, a) }
func ExerciseID(id string) slog.Attr  { return slog.String(KeyExerciseID, id) }
func Day(d string) slog.Attr          { return slog.String(KeyDay, d) }
func ExerciseType(t string) slog.Attr { return slog.String(KeyType, t) }
func From(d string) slog.Attr         { return slog.String(KeyFrom, d) }
func To(d string) slog.Attr           { return slog.String(KeyTo, d) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Port(p int) slog.Attr            { return slog.Int(KeyPort, p) }
func Subject(s string) slog.Attr      { return slog.String(KeySubject, s) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
