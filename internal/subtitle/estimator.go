package subtitle

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// EstimatedConfidence marks segments whose timing was estimated rather
// than measured.
const EstimatedConfidence = 0.5

var (
	whitespaceRe       = regexp.MustCompile(`\s+`)
	sentenceBoundaryRe = regexp.MustCompile(`[.!?]+`)
)

// Estimator assigns timestamps to a flat transcript with a known total
// duration. Each sentence-level unit receives a share of the total
// proportional to its character count, clamped to the configured
// duration bounds.
type Estimator struct {
	opts Options
}

func NewEstimator(opts Options) *Estimator {
	return &Estimator{opts: opts}
}

// Estimate produces timed segments for a plain transcript. Allocation
// is lossy under tight budgets: once the running cursor reaches total,
// remaining units are dropped.
func (e *Estimator) Estimate(text string, total time.Duration) []Segment {
	units := e.splitUnits(text)
	if len(units) == 0 || total <= 0 {
		return nil
	}

	totalChars := 0
	for _, u := range units {
		totalChars += utf8.RuneCountInString(u)
	}
	if totalChars == 0 {
		return nil
	}

	var segments []Segment
	current := time.Duration(0)

	for _, unit := range units {
		share := float64(utf8.RuneCountInString(unit)) / float64(totalChars)
		duration := time.Duration(share * float64(total))

		if duration < e.opts.MinDuration {
			duration = e.opts.MinDuration
		}
		if duration > e.opts.MaxDuration {
			duration = e.opts.MaxDuration
		}
		if current+duration > total {
			duration = total - current
		}

		if duration > 0 {
			segments = append(segments, Segment{
				StartTime:  current,
				EndTime:    current + duration,
				Text:       unit,
				Confidence: EstimatedConfidence,
			})
			current += duration
		}

		if current >= total {
			break
		}
	}

	return segments
}

// splitUnits breaks a transcript into sentence-level units, falling
// back to a length-based word split when no sentence punctuation
// exists.
func (e *Estimator) splitUnits(text string) []string {
	text = whitespaceRe.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return nil
	}

	var units []string
	for _, part := range sentenceBoundaryRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			units = append(units, part)
		}
	}

	if len(units) > 1 {
		return units
	}

	budget := e.opts.MaxCharsPerLine * e.opts.MaxLinesPerEntry
	if budget <= 0 {
		return units
	}
	return splitByWords(text, budget)
}
