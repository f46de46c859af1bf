package calendar

import "sort"

// DailySummary is the per-day rollup of exercise counts by status. It is
// derived on every query and never persisted. The counts always satisfy
// Total == Planned + InProgress + Done + Skipped.
type DailySummary struct {
	Day        Date
	Total      int
	Planned    int
	InProgress int
	Done       int
	Skipped    int
}

// Summarize groups exercises by day and tallies status counts. Days without
// exercises are not emitted (the result is sparse, not a dense calendar).
// The reference date is taken once by the caller so a batch spanning a day
// boundary is classified consistently. Output is ordered by day ascending.
func Summarize(exercises []Exercise, today Date) []DailySummary {
	byDay := make(map[Date]*DailySummary)
	for _, ex := range exercises {
		s, ok := byDay[ex.Day]
		if !ok {
			s = &DailySummary{Day: ex.Day}
			byDay[ex.Day] = s
		}
		s.Total++
		switch ResolveStatus(ex.Day, ex.Progress, ex.Target, today) {
		case StatusPlanned:
			s.Planned++
		case StatusInProgress:
			s.InProgress++
		case StatusDone:
			s.Done++
		case StatusSkipped:
			s.Skipped++
		}
	}

	summaries := make([]DailySummary, 0, len(byDay))
	for _, s := range byDay {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Day.Before(summaries[j].Day)
	})
	return summaries
}

// SortExercises orders exercises deterministically: day ascending, then
// creation time ascending, then id ascending. The id tie-break keeps the
// order reproducible when creation timestamps collide at clock resolution.
func SortExercises(exercises []Exercise) {
	sort.Slice(exercises, func(i, j int) bool {
		a, b := exercises[i], exercises[j]
		if c := a.Day.Compare(b.Day); c != 0 {
			return c < 0
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}
