package subtitle

import "time"

// overlapGap is the minimum breathing room kept between consecutive
// entries when extending display time.
const overlapGap = 100 * time.Millisecond

// Optimizer post-processes timed entries so each is displayed long
// enough to read without overlapping its neighbor.
type Optimizer struct {
	opts Options
}

func NewOptimizer(opts Options) *Optimizer {
	return &Optimizer{opts: opts}
}

// Optimize enforces the duration bounds on a sequence of entries
// ordered by start time. The result has the same length and order as
// the input, and consecutive entries never overlap.
//
// An entry whose minimum-duration extension is blocked by a
// near-immediate successor is left shorter than the minimum rather than
// forced to overlap.
func (o *Optimizer) Optimize(entries []Entry) []Entry {
	optimized := make([]Entry, len(entries))
	copy(optimized, entries)

	for i := range optimized {
		entry := &optimized[i]
		duration := entry.EndTime - entry.StartTime

		if duration < o.opts.MinDuration {
			newEnd := entry.StartTime + o.opts.MinDuration
			if i+1 < len(optimized) {
				ceiling := optimized[i+1].StartTime - overlapGap
				if newEnd > ceiling {
					newEnd = ceiling
				}
			}
			if newEnd < entry.StartTime {
				newEnd = entry.StartTime
			}
			entry.EndTime = newEnd
		} else if duration > o.opts.MaxDuration {
			entry.EndTime = entry.StartTime + o.opts.MaxDuration
		}

		// Collapse any residual overlap carried in from the source
		// timings.
		if i+1 < len(optimized) && entry.EndTime > optimized[i+1].StartTime {
			entry.EndTime = optimized[i+1].StartTime
		}
	}

	return optimized
}
