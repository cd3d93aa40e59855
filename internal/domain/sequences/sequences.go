// Package sequences implements the sequence algebra the interpreter applies to
// division timelines and value lists.
package sequences

import (
	"fmt"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// Weight sums the durations of divisions.
func Weight(divisions []m.Division) m.Duration {
	var total m.Duration
	for _, d := range divisions {
		total = total.Add(d.Duration())
	}

	return total
}

// Reflect returns s in reverse order.
func Reflect[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// Rotate shifts s right by n positions; negative n shifts left.
func Rotate[T any](s []T, n int) []T {
	out := make([]T, len(s))
	if len(s) == 0 {
		return out
	}

	n %= len(s)
	if n < 0 {
		n += len(s)
	}

	copy(out, s[len(s)-n:])
	copy(out[n:], s[:len(s)-n])

	return out
}

// RotateByDuration moves trailing divisions worth d to the front. Negative d
// moves leading divisions to the back. The duration must land on a division
// boundary once accumulated.
func RotateByDuration(divisions []m.Division, d m.Duration) ([]m.Division, error) {
	if d.IsZero() || len(divisions) == 0 {
		return append([]m.Division(nil), divisions...), nil
	}

	target := d
	if d.Sign() < 0 {
		target = d.Neg()
	}

	var acc m.Duration

	for k := 1; k <= len(divisions); k++ {
		i := k - 1
		if d.Sign() > 0 {
			i = len(divisions) - k
		}

		acc = acc.Add(divisions[i].Duration())
		if acc.Less(target) {
			continue
		}

		if d.Sign() > 0 {
			return Rotate(divisions, k), nil
		}

		return Rotate(divisions, -k), nil
	}

	return nil, fmt.Errorf("%w: cannot rotate %s by %s", m.ErrConfiguration, Weight(divisions), d)
}

// RepeatToLength cycles s until it holds exactly n elements.
func RepeatToLength[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", m.ErrConfiguration, n)
	}

	if n > 0 && len(s) == 0 {
		return nil, fmt.Errorf("%w: cannot repeat an empty sequence to length %d", m.ErrConfiguration, n)
	}

	out := make([]T, n)
	for i := range out {
		out[i] = s[i%len(s)]
	}

	return out, nil
}

// RepeatToWeight cycles divisions until they sum to weight, cutting the last
// one short when needed.
func RepeatToWeight(divisions []m.Division, weight m.Duration) ([]m.Division, error) {
	if weight.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative weight %s", m.ErrConfiguration, weight)
	}

	if weight.IsZero() {
		return nil, nil
	}

	if Weight(divisions).Sign() <= 0 {
		return nil, fmt.Errorf("%w: cannot repeat weightless divisions to %s", m.ErrConfiguration, weight)
	}

	var (
		out []m.Division
		acc m.Duration
	)

	for i := 0; acc.Less(weight); i++ {
		d := divisions[i%len(divisions)].Closed()
		if d.Duration().Sign() <= 0 {
			continue
		}

		if next := acc.Add(d.Duration()); next.Greater(weight) {
			d = d.WithDuration(weight.Sub(acc))
		}

		acc = acc.Add(d.Duration())
		out = append(out, d)
	}

	return out, nil
}

// SplitByWeights cuts divisions into consecutive parts of the given weights.
// A division straddling a boundary is split in two; the left piece is marked
// right-open and the right piece left-open. Material past the last weight is
// returned as a final overhang part.
func SplitByWeights(divisions []m.Division, weights []m.Duration) ([][]m.Division, error) {
	for _, w := range weights {
		if w.Sign() < 0 {
			return nil, fmt.Errorf("%w: negative weight %s", m.ErrConfiguration, w)
		}
	}

	parts := make([][]m.Division, 0, len(weights)+1)
	queue := append([]m.Division(nil), divisions...)

	for _, w := range weights {
		var (
			part []m.Division
			acc  m.Duration
		)

		for len(queue) > 0 && acc.Less(w) {
			d := queue[0]
			next := acc.Add(d.Duration())

			if next.LessOrEqual(w) {
				part = append(part, d)
				acc = next
				queue = queue[1:]

				continue
			}

			left := d.WithDuration(w.Sub(acc))
			left.LeftOpen = d.LeftOpen
			left.RightOpen = true
			right := d.WithDuration(next.Sub(w))
			right.LeftOpen = true
			right.RightOpen = d.RightOpen

			part = append(part, left)
			acc = w
			queue[0] = right
		}

		parts = append(parts, part)
	}

	if len(queue) > 0 {
		parts = append(parts, queue)
	}

	return parts, nil
}

// PartitionByBackgroundedWeights groups whole divisions by the weight window
// their start offset falls in. Divisions are never split.
func PartitionByBackgroundedWeights(divisions []m.Division, weights []m.Duration) [][]m.Division {
	parts := make([][]m.Division, len(weights))

	var windowStart, offset m.Offset

	i := 0

	for part, w := range weights {
		windowStop := windowStart.Add(w)
		for i < len(divisions) && offset.Less(windowStop) {
			parts[part] = append(parts[part], divisions[i])
			offset = offset.Add(divisions[i].Duration())
			i++
		}

		windowStart = windowStop
	}

	if i < len(divisions) && len(parts) > 0 {
		parts[len(parts)-1] = append(parts[len(parts)-1], divisions[i:]...)
	}

	return parts
}

// SliceByTimespan keeps the material of divisions inside t, with offsets
// measured from the start of the sequence. Divisions cut by either edge are
// shortened.
func SliceByTimespan(divisions []m.Division, t m.Timespan) []m.Division {
	var (
		out   []m.Division
		start m.Offset
	)

	for _, d := range divisions {
		span := m.Timespan{Start: start, Stop: start.Add(d.Duration())}
		start = span.Stop

		shared, ok := span.Intersection(t)
		if !ok {
			continue
		}

		if shared == span {
			out = append(out, d)

			continue
		}

		out = append(out, d.WithDuration(shared.Duration()))
	}

	return out
}

// PartitionByCounts cuts s into consecutive parts of the given lengths.
func PartitionByCounts[T any](s []T, counts []int) ([][]T, error) {
	parts := make([][]T, 0, len(counts))

	i := 0

	for _, c := range counts {
		if c < 0 || i+c > len(s) {
			return nil, fmt.Errorf("%w: counts %v exceed %d elements", m.ErrConfiguration, counts, len(s))
		}

		parts = append(parts, s[i:i+c:i+c])
		i += c
	}

	return parts, nil
}

// PartitionIntegerByRatio splits n into len(ratio) counts as close to ratio as
// whole numbers allow. Boundaries are floored left to right and the
// last part absorbs what remains.
func PartitionIntegerByRatio(n int, ratio []int) ([]int, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}

	if len(ratio) > n {
		return nil, fmt.Errorf("%w: cannot partition %d into %d parts", m.ErrConfiguration, n, len(ratio))
	}

	total := 0
	for _, r := range ratio {
		total += r
	}

	counts := make([]int, len(ratio))
	cumulative, previous := 0, 0

	for i, r := range ratio {
		cumulative += r

		boundary := n * cumulative / total
		if i == len(ratio)-1 {
			boundary = n
		}

		counts[i] = boundary - previous
		previous = boundary
	}

	return counts, nil
}

// PartitionByRatio cuts s into len(ratio) parts whose lengths follow ratio.
func PartitionByRatio[T any](s []T, ratio []int) ([][]T, error) {
	counts, err := PartitionIntegerByRatio(len(s), ratio)
	if err != nil {
		return nil, err
	}

	return PartitionByCounts(s, counts)
}

// PartitionByRatioOfDurations cuts divisions into len(ratio) parts whose
// weights follow ratio as closely as whole divisions allow. Each division goes
// to the part whose weight window holds its start offset.
func PartitionByRatioOfDurations(divisions []m.Division, ratio []int) ([][]m.Division, error) {
	if err := validateRatio(ratio); err != nil {
		return nil, err
	}

	if len(ratio) > len(divisions) {
		return nil, fmt.Errorf("%w: cannot partition %d divisions into %d parts", m.ErrConfiguration, len(divisions), len(ratio))
	}

	return PartitionByBackgroundedWeights(divisions, RatioWeights(Weight(divisions), ratio)), nil
}

// RatioWeights divides total into len(ratio) exact weights following ratio.
func RatioWeights(total m.Duration, ratio []int) []m.Duration {
	sum := 0
	for _, r := range ratio {
		sum += r
	}

	weights := make([]m.Duration, 0, len(ratio))
	for _, r := range ratio {
		weights = append(weights, total.Mul(m.NewDuration(int64(r), int64(sum))))
	}

	return weights
}

// Part picks one part by index; negative indices count from the end.
func Part[T any](parts [][]T, index int) ([]T, error) {
	i := index
	if i < 0 {
		i += len(parts)
	}

	if i < 0 || i >= len(parts) {
		return nil, fmt.Errorf("%w: part %d of %d", m.ErrLookup, index, len(parts))
	}

	return parts[i], nil
}

// Slice returns s[start:stop] with negative indices counted from the end and
// out-of-range indices clamped.
func Slice[T any](s []T, start, stop int) []T {
	clamp := func(i int) int {
		if i < 0 {
			i += len(s)
		}

		return max(0, min(i, len(s)))
	}

	start, stop = clamp(start), clamp(stop)
	if stop < start {
		return []T{}
	}

	return append([]T{}, s[start:stop]...)
}

func validateRatio(ratio []int) error {
	if len(ratio) == 0 {
		return fmt.Errorf("%w: empty ratio", m.ErrConfiguration)
	}

	for _, r := range ratio {
		if r <= 0 {
			return fmt.Errorf("%w: ratio %v has a nonpositive term", m.ErrConfiguration, ratio)
		}
	}

	return nil
}
