package sequences

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func divisions(pairs ...[2]int64) []m.Division {
	out := make([]m.Division, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, m.NewDivision(p[0], p[1]))
	}

	return out
}

func TestReflect_IsItsOwnInverse(t *testing.T) {
	for _, s := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
		assert.Equal(t, len(s), len(Reflect(s)))
		assert.Equal(t, append([]int{}, s...), Reflect(Reflect(s)))
	}

	assert.Equal(t, []int{3, 2, 1}, Reflect([]int{1, 2, 3}))
}

func TestRotate_RotatesRight(t *testing.T) {
	assert.Equal(t, []int{4, 5, 1, 2, 3}, Rotate([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, []int{3, 4, 5, 1, 2}, Rotate([]int{1, 2, 3, 4, 5}, -2))
	assert.Equal(t, []int{1, 2, 3}, Rotate([]int{1, 2, 3}, 3))
	assert.Empty(t, Rotate([]int{}, 4))
}

func TestRotate_NegativeRotationIsInverse(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e", "f", "g"}

	for n := -10; n <= 10; n++ {
		assert.Equal(t, s, Rotate(Rotate(s, n), -n), "n=%d", n)
	}
}

func TestRotateByDuration(t *testing.T) {
	divs := divisions([2]int64{1, 8}, [2]int64{1, 4}, [2]int64{1, 16}, [2]int64{1, 16})

	t.Run("positive duration rotates trailing material to the front", func(t *testing.T) {
		got, err := RotateByDuration(divs, m.NewDuration(1, 8))
		require.NoError(t, err)
		assert.Equal(t, divisions([2]int64{1, 16}, [2]int64{1, 16}, [2]int64{1, 8}, [2]int64{1, 4}), got)
	})

	t.Run("negative duration rotates leading material to the back", func(t *testing.T) {
		got, err := RotateByDuration(divs, m.NewDuration(-3, 8))
		require.NoError(t, err)
		assert.Equal(t, divisions([2]int64{1, 16}, [2]int64{1, 16}, [2]int64{1, 8}, [2]int64{1, 4}), got)
	})

	t.Run("duration longer than the material fails", func(t *testing.T) {
		_, err := RotateByDuration(divs, m.NewDuration(1, 1))
		require.ErrorIs(t, err, m.ErrConfiguration)
	})
}

func TestRepeatToLength(t *testing.T) {
	got, err := RepeatToLength([]int{1, 2, 3}, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, got)

	got, err = RepeatToLength([]int{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = RepeatToLength([]int{}, 2)
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestRepeatToWeight_TruncatesLastRepetition(t *testing.T) {
	got, err := RepeatToWeight(divisions([2]int64{3, 16}), m.NewDuration(7, 8))
	require.NoError(t, err)

	assert.Equal(t, divisions(
		[2]int64{3, 16}, [2]int64{3, 16}, [2]int64{3, 16}, [2]int64{3, 16}, [2]int64{2, 16},
	), got)
	assert.Equal(t, m.NewDuration(7, 8), Weight(got))
}

func TestRepeatToWeight_Errors(t *testing.T) {
	_, err := RepeatToWeight(nil, m.NewDuration(1, 4))
	require.ErrorIs(t, err, m.ErrConfiguration)

	got, err := RepeatToWeight(nil, m.Duration{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSplitByWeights_SplitsStraddlingDivisions(t *testing.T) {
	voice := divisions([2]int64{3, 8}, [2]int64{3, 8}, [2]int64{3, 8})

	parts, err := SplitByWeights(voice, []m.Duration{m.NewDuration(1, 2), m.NewDuration(5, 8)})
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, "[3, 8], [1, 8)", m.DivisionList{Divisions: parts[0]}.String())
	assert.Equal(t, "(2, 8], [3, 8]", m.DivisionList{Divisions: parts[1]}.String())
}

func TestSplitByWeights_KeepsOverhang(t *testing.T) {
	voice := divisions([2]int64{1, 4}, [2]int64{1, 4}, [2]int64{1, 4})

	parts, err := SplitByWeights(voice, []m.Duration{m.NewDuration(1, 4), m.NewDuration(3, 8)})
	require.NoError(t, err)
	require.Len(t, parts, 3)

	assert.Equal(t, "(1, 8]", m.DivisionList{Divisions: parts[2]}.String())

	var total m.Duration
	for _, p := range parts {
		total = total.Add(Weight(p))
	}

	assert.Equal(t, Weight(voice), total)
}

func TestPartitionByBackgroundedWeights_GroupsByStartOffset(t *testing.T) {
	voice := divisions([2]int64{3, 16}, [2]int64{3, 16}, [2]int64{3, 16}, [2]int64{3, 16})

	parts := PartitionByBackgroundedWeights(voice, []m.Duration{m.NewDuration(1, 4), m.NewDuration(1, 2)})
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 2)
	assert.Len(t, parts[1], 2)
}

func TestSliceByTimespan(t *testing.T) {
	voice := divisions([2]int64{3, 16}, [2]int64{3, 16}, [2]int64{3, 16})

	got := SliceByTimespan(voice, m.Timespan{Start: m.NewDuration(1, 8), Stop: m.NewDuration(1, 2)})

	assert.Equal(t, divisions([2]int64{1, 16}, [2]int64{3, 16}, [2]int64{2, 16}), got)
	assert.Empty(t, SliceByTimespan(voice, m.Timespan{Start: m.NewDuration(1, 1), Stop: m.NewDuration(2, 1)}))
}

func TestPartitionIntegerByRatio(t *testing.T) {
	counts, err := PartitionIntegerByRatio(10, []int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3, 4}, counts)

	counts, err = PartitionIntegerByRatio(6, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, counts)

	_, err = PartitionIntegerByRatio(2, []int{1, 1, 1})
	require.ErrorIs(t, err, m.ErrConfiguration)

	_, err = PartitionIntegerByRatio(4, []int{1, 0})
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestPartitionByRatio_ConcatenationReproducesInput(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	for _, ratio := range [][]int{{1}, {1, 1}, {1, 2, 3}, {2, 1}, {1, 1, 1, 1}, {3, 1, 2}} {
		parts, err := PartitionByRatio(s, ratio)
		require.NoError(t, err)
		require.Len(t, parts, len(ratio))

		var joined []int
		for _, p := range parts {
			joined = append(joined, p...)
		}

		assert.Equal(t, s, joined, "ratio %v", ratio)
	}
}

func TestPartitionByRatioOfDurations(t *testing.T) {
	voice := divisions([2]int64{1, 2}, [2]int64{1, 8}, [2]int64{1, 8}, [2]int64{1, 4})

	parts, err := PartitionByRatioOfDurations(voice, []int{1, 1})
	require.NoError(t, err)
	require.Len(t, parts, 2)

	assert.Equal(t, divisions([2]int64{1, 2}), parts[0])
	assert.Equal(t, divisions([2]int64{1, 8}, [2]int64{1, 8}, [2]int64{1, 4}), parts[1])

	_, err = PartitionByRatioOfDurations(voice, []int{1, 1, 1, 1, 1})
	require.ErrorIs(t, err, m.ErrConfiguration)
}

func TestPart_NegativeIndexCountsFromEnd(t *testing.T) {
	parts := [][]int{{1}, {2}, {3}}

	got, err := Part(parts, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	_, err = Part(parts, 3)
	require.ErrorIs(t, err, m.ErrLookup)
}

func TestSlice(t *testing.T) {
	s := []int{0, 1, 2, 3, 4}

	assert.Equal(t, []int{1, 2}, Slice(s, 1, 3))
	assert.Equal(t, []int{3, 4}, Slice(s, -2, 5))
	assert.Equal(t, []int{0, 1, 2, 3}, Slice(s, 0, -1))
	assert.Empty(t, Slice(s, 3, 1))
	assert.Equal(t, s, Slice(s, -10, 10))
}
