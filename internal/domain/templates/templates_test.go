package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func TestGroupedRhythmicStaves_BuildsNamedVoices(t *testing.T) {
	score := NewGroupedRhythmicStaves(3)()

	assert.Equal(t, m.ScoreContext, score.Kind)

	voices := score.Voices()
	require.Len(t, voices, 3)
	assert.Equal(t, "Voice 1", voices[0].Name)
	assert.Equal(t, "Voice 3", voices[2].Name)

	chain := voices[1].ImproperParentage()
	require.Len(t, chain, 4)
	assert.Equal(t, "Staff 2", chain[1].Name)
	assert.Equal(t, score, chain[3])
}

func TestTemplate_ReturnsFreshTreeEachCall(t *testing.T) {
	tmpl := NewStringQuartet()

	a, b := tmpl(), tmpl()
	a.Find("Viola Voice").Extend(m.NewContainer(nil))

	assert.Empty(t, b.Find("Viola Voice").Containers)
}

func TestByName(t *testing.T) {
	tmpl, err := ByName(StringQuartet, 0)
	require.NoError(t, err)
	assert.Len(t, tmpl().Voices(), 4)

	tmpl, err = ByName(GroupedRhythmicStaves, 0)
	require.NoError(t, err)
	assert.Len(t, tmpl().Voices(), 1)

	_, err = ByName("orchestra", 0)
	require.ErrorIs(t, err, m.ErrConfiguration)
}
