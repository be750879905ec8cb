package conflict

import (
	"time"

	"interview-scheduler/internal/domain/interval"
)

// Report is the outcome of one conflict check. Conflicts are
// deduplicated by (source, interval) content, first-seen wins, and keep
// insertion order so a deterministic source ordering yields a
// deterministic report.
type Report struct {
	HasConflicts   bool
	Conflicts      []Conflict
	Warnings       []string
	SuggestedSlots []interval.Interval
}

func (r Report) HardConflicts() []Conflict {
	hard, _ := SplitBySeverity(r.Conflicts)
	return hard
}

func (r Report) SoftConflicts() []Conflict {
	_, soft := SplitBySeverity(r.Conflicts)
	return soft
}

// SplitBySeverity partitions conflicts into hard and soft groups,
// preserving order within each group.
func SplitBySeverity(conflicts []Conflict) (hard, soft []Conflict) {
	for _, c := range conflicts {
		if c.Severity == SeverityHard {
			hard = append(hard, c)
		} else {
			soft = append(soft, c)
		}
	}
	return hard, soft
}

type dedupKey struct {
	source Source
	start  int64
	end    int64
}

// ReportBuilder accumulates conflicts and warnings from multiple source
// queries and produces a deduplicated Report.
type ReportBuilder struct {
	conflicts []Conflict
	seen      map[dedupKey]struct{}
	warnings  []string
	seenWarn  map[string]struct{}
}

func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		seen:     make(map[dedupKey]struct{}),
		seenWarn: make(map[string]struct{}),
	}
}

// AddConflict records a conflict unless one with the same
// (source, interval) key was already recorded.
func (b *ReportBuilder) AddConflict(c Conflict) {
	key := dedupKey{
		source: c.Source,
		start:  c.Interval.Start().UnixNano(),
		end:    c.Interval.End().UnixNano(),
	}
	if _, ok := b.seen[key]; ok {
		return
	}
	b.seen[key] = struct{}{}
	b.conflicts = append(b.conflicts, c)
}

func (b *ReportBuilder) AddConflicts(cs []Conflict) {
	for _, c := range cs {
		b.AddConflict(c)
	}
}

// AddWarning records an advisory, dropping exact repeats.
func (b *ReportBuilder) AddWarning(w string) {
	if w == "" {
		return
	}
	if _, ok := b.seenWarn[w]; ok {
		return
	}
	b.seenWarn[w] = struct{}{}
	b.warnings = append(b.warnings, w)
}

func (b *ReportBuilder) AddWarnings(ws []string) {
	for _, w := range ws {
		b.AddWarning(w)
	}
}

func (b *ReportBuilder) HasConflicts() bool {
	return len(b.conflicts) > 0
}

func (b *ReportBuilder) Build() Report {
	return Report{
		HasConflicts: len(b.conflicts) > 0,
		Conflicts:    b.conflicts,
		Warnings:     b.warnings,
	}
}

// WithinWindow trims a commitment interval check to overlap testing
// against a probe window; helper shared by the conflict sources.
func WithinWindow(commitStart, commitEnd time.Time, window interval.Interval) (interval.Interval, bool) {
	iv, err := interval.New(commitStart, commitEnd)
	if err != nil {
		return interval.Interval{}, false
	}
	if !iv.Overlaps(window) {
		return interval.Interval{}, false
	}
	return iv, true
}
