// Package rhythms holds the rhythm makers a score specification can name and
// the registry the interpreter looks them up in.
package rhythms

import (
	"fmt"
	"math/bits"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// DefaultPitch is the MIDI key makers give notes before pitch classes apply.
const DefaultPitch = 60

// Maker turns division pairs into leaves, one leaf group per pair.
type Maker interface {
	Name() string
	Make(pairs []m.Pair) ([][]m.Leaf, error)
	// Beam reports whether the containers built from one call should be
	// joined by a duration beam.
	Beam() bool
}

// Names of the built-in makers.
const (
	NoteFilled   = "note_filled"
	RestFilled   = "rest_filled"
	Eighths      = "eighths"
	Sixteenths   = "sixteenths"
	ThirtySecond = "thirty_seconds"
)

type filledMaker struct {
	name string
	kind m.LeafKind
}

// NewNoteFilledMaker fills each division with one tied chain of notes.
func NewNoteFilledMaker() Maker {
	return &filledMaker{name: NoteFilled, kind: m.NoteLeaf}
}

// NewRestFilledMaker fills each division with rests.
func NewRestFilledMaker() Maker {
	return &filledMaker{name: RestFilled, kind: m.RestLeaf}
}

func (f *filledMaker) Name() string { return f.name }

func (f *filledMaker) Beam() bool { return false }

func (f *filledMaker) Make(pairs []m.Pair) ([][]m.Leaf, error) {
	groups := make([][]m.Leaf, 0, len(pairs))

	for _, p := range pairs {
		if p.Denominator <= 0 || p.Numerator <= 0 {
			return nil, fmt.Errorf("%w: %s cannot fill division %s", m.ErrConfiguration, f.name, p)
		}

		groups = append(groups, Leaves(f.kind, p.Duration()))
	}

	return groups, nil
}

type equalUnitMaker struct {
	name string
	unit m.Duration
}

// NewEqualUnitMaker fills divisions with notes of one unit duration. The last
// note of a division absorbs any remainder shorter than the unit.
func NewEqualUnitMaker(name string, unit m.Duration) Maker {
	return &equalUnitMaker{name: name, unit: unit}
}

func (e *equalUnitMaker) Name() string { return e.name }

func (e *equalUnitMaker) Beam() bool { return true }

func (e *equalUnitMaker) Make(pairs []m.Pair) ([][]m.Leaf, error) {
	groups := make([][]m.Leaf, 0, len(pairs))

	for _, p := range pairs {
		if p.Denominator <= 0 || p.Numerator <= 0 {
			return nil, fmt.Errorf("%w: %s cannot fill division %s", m.ErrConfiguration, e.name, p)
		}

		var (
			group     []m.Leaf
			remaining = p.Duration()
		)

		for remaining.GreaterOrEqual(e.unit) {
			group = append(group, m.Leaf{Kind: m.NoteLeaf, Duration: e.unit, Pitch: DefaultPitch})
			remaining = remaining.Sub(e.unit)
		}

		if remaining.Sign() > 0 {
			group = append(group, Leaves(m.NoteLeaf, remaining)...)
		}

		groups = append(groups, group)
	}

	return groups, nil
}

// Leaves spells d as notated leaves of kind. Durations over a power-of-two
// denominator become assignable values joined by ties when kind is a note;
// any other duration becomes a single leaf.
func Leaves(kind m.LeafKind, d m.Duration) []m.Leaf {
	pitch := 0
	if kind == m.NoteLeaf {
		pitch = DefaultPitch
	}

	values := Decompose(d)
	leaves := make([]m.Leaf, 0, len(values))

	for i, v := range values {
		leaves = append(leaves, m.Leaf{
			Kind:     kind,
			Duration: v,
			Pitch:    pitch,
			Tied:     kind == m.NoteLeaf && i < len(values)-1,
		})
	}

	return leaves
}

// Decompose splits d into assignable durations, largest first: whole notes,
// then plain, dotted or double-dotted values.
func Decompose(d m.Duration) []m.Duration {
	if d.Sign() <= 0 {
		return nil
	}

	den := d.Den()
	if den&(den-1) != 0 {
		return []m.Duration{d}
	}

	var out []m.Duration

	whole := m.NewDuration(1, 1)
	for d.Greater(whole) {
		out = append(out, whole)
		d = d.Sub(whole)
	}

	for d.Sign() > 0 {
		num := uint64(d.Num())
		top := bits.Len64(num) - 1

		// Up to two dots: keep the top bit and at most two contiguous bits below it.
		value := uint64(1) << top
		for dot := 1; dot <= 2 && top-dot >= 0 && num&(1<<(top-dot)) != 0; dot++ {
			value |= 1 << (top - dot)
		}

		piece := m.NewDuration(int64(value), d.Den())
		out = append(out, piece)
		d = d.Sub(piece)
	}

	return out
}
