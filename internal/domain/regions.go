package domain

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/scorespec/internal/model"
)

type overlapOutcome int

const (
	outcomeKeep overlapOutcome = iota
	outcomeRemove
	outcomeSplit
	outcomeShorten
	outcomeDelay
)

// classifyOverlap decides what happens to an existing command c when n is
// laid over it. Only commands that actually overlap n change.
func classifyOverlap(c, n m.Command) overlapOutcome {
	if !c.Timespan().Overlaps(n.Timespan()) {
		return outcomeKeep
	}

	switch {
	case n.StartOffset.LessOrEqual(c.StartOffset) && c.StopOffset.LessOrEqual(n.StopOffset):
		return outcomeRemove
	case n.StartOffset.LessOrEqual(c.StartOffset):
		return outcomeDelay
	case c.StopOffset.LessOrEqual(n.StopOffset):
		return outcomeShorten
	default:
		return outcomeSplit
	}
}

// ResolveOverlaps lays commands over each other in declaration order, later
// commands winning, and returns a non-overlapping timeline sorted by start
// offset. For each arriving command every existing neighbour is classified
// first; outcomes are then applied as removals, splits, shortens and delays.
func ResolveOverlaps(commands []m.Command) []m.Command {
	var timeline []m.Command

	for _, n := range commands {
		if n.Duration().Sign() <= 0 {
			continue
		}

		outcomes := make([]overlapOutcome, len(timeline))
		for i, c := range timeline {
			outcomes[i] = classifyOverlap(c, n)
		}

		removed := make([]bool, len(timeline))

		var extra []m.Command

		for _, pass := range []overlapOutcome{outcomeRemove, outcomeSplit, outcomeShorten, outcomeDelay} {
			for i := range timeline {
				if outcomes[i] != pass {
					continue
				}

				switch pass {
				case outcomeRemove:
					removed[i] = true
				case outcomeSplit:
					right := timeline[i]
					right.StartOffset = n.StopOffset
					timeline[i].StopOffset = n.StartOffset
					extra = append(extra, right)
				case outcomeShorten:
					timeline[i].StopOffset = n.StartOffset
				case outcomeDelay:
					timeline[i].StartOffset = n.StopOffset
				}
			}
		}

		next := make([]m.Command, 0, len(timeline)+len(extra)+1)
		for i, c := range timeline {
			if !removed[i] {
				next = append(next, c)
			}
		}

		next = append(next, extra...)
		next = append(next, n)

		sort.SliceStable(next, func(i, j int) bool {
			return next[i].StartOffset.Less(next[j].StartOffset)
		})

		timeline = next
	}

	return timeline
}

// FillGaps inserts commands produced by fill for every stretch of [0, total)
// the timeline leaves uncovered. The timeline must be sorted and
// non-overlapping.
func FillGaps(timeline []m.Command, total m.Duration, fill func(m.Timespan) []m.Command) []m.Command {
	var (
		out    []m.Command
		cursor m.Offset
	)

	for _, c := range timeline {
		if cursor.Less(c.StartOffset) {
			out = append(out, fill(m.Timespan{Start: cursor, Stop: c.StartOffset})...)
		}

		out = append(out, c)
		cursor = m.MaxDuration(cursor, c.StopOffset)
	}

	if cursor.Less(total) {
		out = append(out, fill(m.Timespan{Start: cursor, Stop: total})...)
	}

	return out
}

// RefreshInherited marks inherited continuations fresh when nothing equal
// directly precedes them.
func RefreshInherited(timeline []m.Command) []m.Command {
	out := append([]m.Command(nil), timeline...)

	for i := range out {
		c := &out[i]
		if !c.Inherited || c.Fresh {
			continue
		}

		if i == 0 {
			c.Fresh = true

			continue
		}

		prev := out[i-1]
		if prev.StopOffset != c.StartOffset || !prev.Value.Equal(c.Value) {
			c.Fresh = true
		}
	}

	return out
}

// RegionCommands merges a sorted, non-overlapping timeline into regions. A
// fresh or truncating command opens a region; any other command continues
// the previous region and must carry the same value, unless that region
// truncates, in which case it opens its own.
func RegionCommands(timeline []m.Command) ([]m.Command, error) {
	var regions []m.Command

	for i, c := range timeline {
		if i == 0 {
			if !c.Fresh {
				return nil, fmt.Errorf("%w: first %s command %s is not fresh", m.ErrConsistency, c.Attribute, c)
			}

			regions = append(regions, c)

			continue
		}

		if c.Fresh || c.Truncate {
			regions = append(regions, c)

			continue
		}

		last := &regions[len(regions)-1]
		if !last.Value.Equal(c.Value) {
			return nil, fmt.Errorf("%w: %s continues region %s with a different value", m.ErrConsistency, c, last)
		}

		if last.Truncate {
			regions = append(regions, c)

			continue
		}

		last.StopOffset = last.StopOffset.Add(c.Duration())
	}

	return regions, nil
}

// FuseCommands joins adjacent commands with equal values when the later one
// is a continuation and neither truncates.
func FuseCommands(timeline []m.Command) []m.Command {
	var fused []m.Command

	for _, c := range timeline {
		if len(fused) > 0 {
			last := &fused[len(fused)-1]
			if !c.Fresh && !c.Truncate && !last.Truncate &&
				last.StopOffset == c.StartOffset && last.Value.Equal(c.Value) {
				last.StopOffset = c.StopOffset

				continue
			}
		}

		fused = append(fused, c)
	}

	return fused
}
