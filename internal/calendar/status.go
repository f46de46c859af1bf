package calendar

// Status is the derived lifecycle classification of an exercise. It is never
// stored; it is recomputed from progress, target, and the scheduled day
// relative to a caller-supplied reference date.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusSkipped    Status = "skipped"
)

// ResolveStatus derives the status of an exercise. The branch order is
// significant: completion wins over lateness, so a late but finished exercise
// is Done, not Skipped, and any unfinished past-day exercise is Skipped even
// with partial progress.
func ResolveStatus(day Date, progress, target float64, today Date) Status {
	if progress >= target {
		return StatusDone
	}
	if day.Before(today) {
		return StatusSkipped
	}
	if progress <= 0 {
		return StatusPlanned
	}
	return StatusInProgress
}
