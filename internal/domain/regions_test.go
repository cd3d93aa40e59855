package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func eighths(n int64) m.Offset {
	return m.NewDuration(n, 8)
}

func command(start, stop int64, value m.Value, fresh bool) m.Command {
	return m.Command{
		Attribute:   m.AttributeDivisions,
		Value:       value,
		ContextName: "Voice 1",
		StartOffset: eighths(start),
		StopOffset:  eighths(stop),
		Fresh:       fresh,
	}
}

func spans(commands []m.Command) []m.Timespan {
	out := make([]m.Timespan, 0, len(commands))
	for _, c := range commands {
		out = append(out, c.Timespan())
	}

	return out
}

func span(start, stop int64) m.Timespan {
	return m.Timespan{Start: eighths(start), Stop: eighths(stop)}
}

var (
	eighthValue  = m.PairsValue(m.NewPair(1, 8))
	quarterValue = m.PairsValue(m.NewPair(1, 4))
)

func TestResolveOverlaps(t *testing.T) {
	t.Run("inner command splits the outer one", func(t *testing.T) {
		outer := command(0, 10, eighthValue, true)
		inner := command(4, 6, quarterValue, true)

		timeline := ResolveOverlaps([]m.Command{outer, inner})

		require.Len(t, timeline, 3)
		assert.Equal(t, []m.Timespan{span(0, 4), span(4, 6), span(6, 10)}, spans(timeline))
		assert.Equal(t, eighthValue, timeline[0].Value)
		assert.Equal(t, quarterValue, timeline[1].Value)
		assert.Equal(t, eighthValue, timeline[2].Value)
	})

	t.Run("covering command removes", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(2, 4, eighthValue, true),
			command(0, 8, quarterValue, true),
		})

		require.Len(t, timeline, 1)
		assert.Equal(t, quarterValue, timeline[0].Value)
	})

	t.Run("later start shortens", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 4, eighthValue, true),
			command(2, 6, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(0, 2), span(2, 6)}, spans(timeline))
	})

	t.Run("earlier start delays", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(4, 8, eighthValue, true),
			command(2, 6, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(2, 6), span(6, 8)}, spans(timeline))
		assert.Equal(t, eighthValue, timeline[1].Value)
	})

	t.Run("one command shortens and delays its neighbours", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 4, eighthValue, true),
			command(4, 8, eighthValue, false),
			command(2, 6, quarterValue, true),
		})

		require.Len(t, timeline, 3)
		assert.Equal(t, []m.Timespan{span(0, 2), span(2, 6), span(6, 8)}, spans(timeline))
		assert.True(t, timeline[0].Fresh)
		assert.Equal(t, quarterValue, timeline[1].Value)
		assert.False(t, timeline[2].Fresh, "the delayed neighbour keeps its own flags")
	})

	t.Run("one command removes, shortens and delays at once", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 2, eighthValue, true),
			command(2, 4, eighthValue, true),
			command(4, 6, eighthValue, true),
			command(6, 8, eighthValue, true),
			command(1, 7, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(0, 1), span(1, 7), span(7, 8)}, spans(timeline))
		assert.Equal(t, quarterValue, timeline[1].Value)
	})

	t.Run("split leaves the other neighbours alone", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 4, eighthValue, true),
			command(4, 8, eighthValue, false),
			command(5, 7, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(0, 4), span(4, 5), span(5, 7), span(7, 8)}, spans(timeline))
		assert.True(t, timeline[0].Fresh)
		assert.False(t, timeline[1].Fresh)
		assert.False(t, timeline[3].Fresh)
	})

	t.Run("neighbours that only touch are kept", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 4, eighthValue, true),
			command(4, 8, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(0, 4), span(4, 8)}, spans(timeline))
	})

	t.Run("zero length commands are dropped", func(t *testing.T) {
		timeline := ResolveOverlaps([]m.Command{
			command(0, 4, eighthValue, true),
			command(2, 2, quarterValue, true),
		})

		assert.Equal(t, []m.Timespan{span(0, 4)}, spans(timeline))
	})
}

func TestFillGaps(t *testing.T) {
	var gaps []m.Timespan

	fill := func(gap m.Timespan) []m.Command {
		gaps = append(gaps, gap)

		return []m.Command{{Value: quarterValue, StartOffset: gap.Start, StopOffset: gap.Stop, Fresh: true}}
	}

	timeline := FillGaps([]m.Command{command(2, 4, eighthValue, true)}, eighths(8), fill)

	assert.Equal(t, []m.Timespan{span(0, 2), span(4, 8)}, gaps)
	assert.Equal(t, []m.Timespan{span(0, 2), span(2, 4), span(4, 8)}, spans(timeline))

	gaps = nil
	full := FillGaps([]m.Command{command(0, 8, eighthValue, true)}, eighths(8), fill)

	assert.Empty(t, gaps)
	assert.Len(t, full, 1)
}

func TestRefreshInherited(t *testing.T) {
	inherited := func(start, stop int64, value m.Value) m.Command {
		c := command(start, stop, value, false)
		c.Inherited = true

		return c
	}

	timeline := RefreshInherited([]m.Command{
		inherited(0, 2, eighthValue),
		inherited(2, 4, eighthValue),
		inherited(4, 6, quarterValue),
		command(6, 7, quarterValue, false),
	})

	assert.True(t, timeline[0].Fresh, "an inherited command opening the timeline is fresh")
	assert.False(t, timeline[1].Fresh, "an equal neighbour continues")
	assert.True(t, timeline[2].Fresh, "a different neighbour starts something new")
	assert.False(t, timeline[3].Fresh, "declared continuations are left alone")
}

func TestRegionCommands(t *testing.T) {
	t.Run("continuations extend the region", func(t *testing.T) {
		regions, err := RegionCommands([]m.Command{
			command(0, 4, eighthValue, true),
			command(4, 6, eighthValue, false),
			command(6, 8, quarterValue, true),
		})
		require.NoError(t, err)

		assert.Equal(t, []m.Timespan{span(0, 6), span(6, 8)}, spans(regions))
	})

	t.Run("truncation opens a region", func(t *testing.T) {
		truncating := command(0, 4, eighthValue, true)
		truncating.Truncate = true

		regions, err := RegionCommands([]m.Command{truncating, command(4, 8, eighthValue, false)})
		require.NoError(t, err)

		assert.Len(t, regions, 2)
	})

	t.Run("first command must be fresh", func(t *testing.T) {
		_, err := RegionCommands([]m.Command{command(0, 4, eighthValue, false)})
		assert.ErrorIs(t, err, m.ErrConsistency)
	})

	t.Run("continuation must keep the value", func(t *testing.T) {
		_, err := RegionCommands([]m.Command{
			command(0, 4, eighthValue, true),
			command(4, 8, quarterValue, false),
		})
		assert.ErrorIs(t, err, m.ErrConsistency)
	})
}

func TestFuseCommands(t *testing.T) {
	fused := FuseCommands([]m.Command{
		command(0, 2, eighthValue, true),
		command(2, 4, eighthValue, false),
		command(4, 6, eighthValue, true),
		command(6, 8, quarterValue, false),
	})

	assert.Equal(t, []m.Timespan{span(0, 4), span(4, 6), span(6, 8)}, spans(fused))

	truncating := command(0, 2, eighthValue, true)
	truncating.Truncate = true

	assert.Len(t, FuseCommands([]m.Command{truncating, command(2, 4, eighthValue, false)}), 2)
}
