package subtitle

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Processor turns raw transcript segments into display-ready entries:
// text is chunked to the character budget, each segment's time span is
// divided among its chunks, and the result is run through the timing
// optimizer.
type Processor struct {
	opts      Options
	optimizer *Optimizer
}

func NewProcessor(opts Options) *Processor {
	return &Processor{
		opts:      opts,
		optimizer: NewOptimizer(opts),
	}
}

// BuildEntries converts timed segments into optimized subtitle entries.
// Segments with empty text are skipped. Entry indices are 1-based and
// continuous across segments.
func (p *Processor) BuildEntries(segments []Segment) []Entry {
	budget := p.opts.MaxCharsPerLine * p.opts.MaxLinesPerEntry
	var entries []Entry

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		chunks := SplitText(text, budget)
		if len(chunks) == 0 {
			continue
		}

		if len(chunks) == 1 {
			entries = append(entries, Entry{
				Index:     len(entries) + 1,
				StartTime: seg.StartTime,
				EndTime:   seg.EndTime,
				Text:      p.wrap(chunks[0]),
			})
			continue
		}

		entries = append(entries, p.distributeTiming(seg, chunks, len(entries)+1)...)
	}

	return p.optimizer.Optimize(entries)
}

// wrap breaks a chunk into display lines within the per-line budget.
func (p *Processor) wrap(chunk string) string {
	return strings.Join(
		WrapLines(chunk, p.opts.MaxCharsPerLine, p.opts.MaxLinesPerEntry),
		"\n",
	)
}

// distributeTiming partitions a segment's time span among its chunks
// proportionally to chunk length. The last chunk always ends exactly at
// the segment's end time.
func (p *Processor) distributeTiming(seg Segment, chunks []string, startIndex int) []Entry {
	totalChars := 0
	for _, chunk := range chunks {
		totalChars += utf8.RuneCountInString(chunk)
	}

	span := seg.EndTime - seg.StartTime
	entries := make([]Entry, 0, len(chunks))
	current := seg.StartTime

	for i, chunk := range chunks {
		end := seg.EndTime
		if i < len(chunks)-1 && totalChars > 0 {
			share := float64(utf8.RuneCountInString(chunk)) / float64(totalChars)
			end = current + time.Duration(share*float64(span))
		}

		entries = append(entries, Entry{
			Index:     startIndex + i,
			StartTime: current,
			EndTime:   end,
			Text:      p.wrap(chunk),
		})
		current = end
	}

	return entries
}
