package model

import (
	"fmt"
	"strings"
)

// Pair is a nonreduced fraction such as a time signature (6, 8) or a
// division value (3, 16).
type Pair struct {
	Numerator   int64
	Denominator int64
}

// NewPair returns (n, d).
func NewPair(n, d int64) Pair {
	return Pair{Numerator: n, Denominator: d}
}

func (p Pair) Duration() Duration {
	return NewDuration(p.Numerator, p.Denominator)
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Numerator, p.Denominator)
}

// Division is a nonreduced fractional duration. LeftOpen and RightOpen mark
// edges that continue from or into a neighbouring division. Divisions are
// values; every operation returns a new one.
type Division struct {
	Pair
	LeftOpen  bool
	RightOpen bool
}

// NewDivision returns the closed division (n, d).
func NewDivision(n, d int64) Division {
	return Division{Pair: NewPair(n, d)}
}

// DivisionsFromPairs converts pairs into closed divisions.
func DivisionsFromPairs(pairs []Pair) []Division {
	divisions := make([]Division, 0, len(pairs))
	for _, p := range pairs {
		divisions = append(divisions, Division{Pair: p})
	}

	return divisions
}

// WithDuration returns a closed division of duration d expressed over this
// division's denominator when possible: (3, 16) with 1/8 gives (2, 16).
func (d Division) WithDuration(x Duration) Division {
	den := Lcm(d.Denominator, x.Den())

	return NewDivision(x.Num()*(den/x.Den()), den)
}

// Closed returns a copy with both open flags cleared.
func (d Division) Closed() Division {
	d.LeftOpen = false
	d.RightOpen = false

	return d
}

func (d Division) String() string {
	left, right := "[", "]"
	if d.LeftOpen {
		left = "("
	}

	if d.RightOpen {
		right = ")"
	}

	return fmt.Sprintf("%s%d, %d%s", left, d.Numerator, d.Denominator, right)
}

// DivisionListKind names the view a division list provides.
type DivisionListKind string

const (
	// VoiceDivisionListKind holds every division of one voice.
	VoiceDivisionListKind DivisionListKind = "voice"
	// DivisionRegionDivisionListKind holds the divisions of one region.
	DivisionRegionDivisionListKind DivisionListKind = "division_region"
	// SegmentDivisionListKind holds the divisions of one voice in one segment.
	SegmentDivisionListKind DivisionListKind = "segment"
	// RhythmRegionDivisionListKind holds the divisions handed to one rhythm maker call.
	RhythmRegionDivisionListKind DivisionListKind = "rhythm_region"
)

// DivisionList is an ordered run of divisions plus the flags of the region
// it came from.
type DivisionList struct {
	Kind      DivisionListKind
	Divisions []Division
	Fresh     bool
	Truncate  bool
}

func (l DivisionList) Len() int { return len(l.Divisions) }

// Duration sums the divisions.
func (l DivisionList) Duration() Duration {
	var total Duration
	for _, d := range l.Divisions {
		total = total.Add(d.Duration())
	}

	return total
}

// Pairs drops the open flags.
func (l DivisionList) Pairs() []Pair {
	pairs := make([]Pair, 0, len(l.Divisions))
	for _, d := range l.Divisions {
		pairs = append(pairs, d.Pair)
	}

	return pairs
}

// Clone copies the division slice.
func (l DivisionList) Clone() DivisionList {
	l.Divisions = append([]Division(nil), l.Divisions...)

	return l
}

func (l DivisionList) String() string {
	parts := make([]string, 0, len(l.Divisions))
	for _, d := range l.Divisions {
		parts = append(parts, d.String())
	}

	return strings.Join(parts, ", ")
}
