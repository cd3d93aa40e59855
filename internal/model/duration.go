package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration is an exact rational number of whole notes. The zero value is a
// valid zero duration and values are always kept reduced, so two equal
// durations compare equal with ==.
type Duration struct {
	num int64
	den int64
}

// Offset is a point in score time measured from the start of the score.
type Offset = Duration

// NewDuration returns numerator/denominator in lowest terms. It panics on a
// zero denominator, like big.NewRat.
func NewDuration(numerator, denominator int64) Duration {
	if denominator == 0 {
		panic("model: zero denominator")
	}

	if numerator == 0 {
		return Duration{}
	}

	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}

	g := gcd(abs(numerator), denominator)

	return Duration{num: numerator / g, den: denominator / g}
}

// ParseDuration parses "n/d" or a bare integer.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)

	numText, denText, found := strings.Cut(s, "/")
	if !found {
		denText = "1"
	}

	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: invalid duration %q", ErrConfiguration, s)
	}

	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil || den == 0 {
		return Duration{}, fmt.Errorf("%w: invalid duration %q", ErrConfiguration, s)
	}

	return NewDuration(num, den), nil
}

// Num returns the reduced numerator.
func (d Duration) Num() int64 { return d.num }

// Den returns the reduced denominator, 1 for zero.
func (d Duration) Den() int64 {
	if d.den == 0 {
		return 1
	}

	return d.den
}

func (d Duration) Add(o Duration) Duration {
	return NewDuration(d.num*o.Den()+o.num*d.Den(), d.Den()*o.Den())
}

func (d Duration) Sub(o Duration) Duration {
	return NewDuration(d.num*o.Den()-o.num*d.Den(), d.Den()*o.Den())
}

func (d Duration) Mul(o Duration) Duration {
	return NewDuration(d.num*o.num, d.Den()*o.Den())
}

// Div panics when o is zero.
func (d Duration) Div(o Duration) Duration {
	return NewDuration(d.num*o.Den(), d.Den()*o.num)
}

// Scale multiplies by an integer.
func (d Duration) Scale(n int64) Duration {
	return NewDuration(d.num*n, d.Den())
}

// Cmp returns -1, 0 or 1.
func (d Duration) Cmp(o Duration) int {
	l, r := d.num*o.Den(), o.num*d.Den()

	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func (d Duration) Less(o Duration) bool {
	return d.Cmp(o) < 0
}

func (d Duration) LessOrEqual(o Duration) bool {
	return d.Cmp(o) <= 0
}

func (d Duration) Greater(o Duration) bool {
	return d.Cmp(o) > 0
}

func (d Duration) GreaterOrEqual(o Duration) bool {
	return d.Cmp(o) >= 0
}

func (d Duration) IsZero() bool {
	return d.num == 0
}

func (d Duration) Sign() int {
	return d.Cmp(Duration{})
}

// Neg returns -d.
func (d Duration) Neg() Duration { return NewDuration(-d.num, d.Den()) }

// Float64 is for display and MIDI tick rounding only.
func (d Duration) Float64() float64 { return float64(d.num) / float64(d.Den()) }

func (d Duration) String() string {
	if d.Den() == 1 {
		return strconv.FormatInt(d.num, 10)
	}

	return fmt.Sprintf("%d/%d", d.num, d.den)
}

// MinDuration returns the smaller of a and b.
func MinDuration(a, b Duration) Duration {
	if a.Less(b) {
		return a
	}

	return b
}

// MaxDuration returns the larger of a and b.
func MaxDuration(a, b Duration) Duration {
	if a.Greater(b) {
		return a
	}

	return b
}

// SumDurations adds up durations.
func SumDurations(durations []Duration) Duration {
	var total Duration
	for _, d := range durations {
		total = total.Add(d)
	}

	return total
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	if a == 0 {
		return 1
	}

	return a
}

// Lcm returns the least common multiple of two positive integers.
func Lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}

// Timespan is the half-open interval [Start, Stop). Zero-length timespans
// denote instants.
type Timespan struct {
	Start Offset
	Stop  Offset
}

// NewTimespan returns [start, stop) or an error when stop precedes start.
func NewTimespan(start, stop Offset) (Timespan, error) {
	if stop.Less(start) {
		return Timespan{}, fmt.Errorf("%w: timespan stop %s precedes start %s", ErrConfiguration, stop, start)
	}

	return Timespan{Start: start, Stop: stop}, nil
}

func (t Timespan) Duration() Duration { return t.Stop.Sub(t.Start) }

// ContainsOffset reports whether o lies in [Start, Stop).
func (t Timespan) ContainsOffset(o Offset) bool {
	return t.Start.LessOrEqual(o) && o.Less(t.Stop)
}

// Contains reports whether other lies entirely within t.
func (t Timespan) Contains(other Timespan) bool {
	return t.Start.LessOrEqual(other.Start) && other.Stop.LessOrEqual(t.Stop)
}

// Overlaps reports whether the two timespans share a nonempty interval.
func (t Timespan) Overlaps(other Timespan) bool {
	return t.Start.Less(other.Stop) && other.Start.Less(t.Stop)
}

// Intersection returns the shared interval; ok is false when there is none.
func (t Timespan) Intersection(other Timespan) (Timespan, bool) {
	if !t.Overlaps(other) {
		return Timespan{}, false
	}

	return Timespan{Start: MaxDuration(t.Start, other.Start), Stop: MinDuration(t.Stop, other.Stop)}, true
}

// StartsBefore reports whether t starts strictly before other.
func (t Timespan) StartsBefore(other Timespan) bool {
	return t.Start.Less(other.Start)
}

// Translate shifts both edges by d.
func (t Timespan) Translate(d Duration) Timespan {
	return Timespan{Start: t.Start.Add(d), Stop: t.Stop.Add(d)}
}

func (t Timespan) String() string {
	return fmt.Sprintf("[%s, %s)", t.Start, t.Stop)
}
