package adapter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scorespec/internal/model"
)

func decode(t *testing.T, doc string) (*m.ScoreSpecification, error) {
	t.Helper()

	return DecodeSpecification(strings.NewReader(doc))
}

func TestDecodeSpecification_Settings(t *testing.T) {
	spec, err := decode(t, `
template: grouped_rhythmic_staves
staves: 2
segments:
  - name: red
    settings:
      - attribute: time_signatures
        value: ["4/8", "3/8"]
      - attribute: divisions
        contexts: ["Voice 1", "Voice 2"]
        value: ["3/16"]
        persist: false
        truncate: true
      - attribute: rhythm
        contexts: ["Voice 1"]
        value: sixteenths
        fresh: false
      - attribute: pitch_classes
        contexts: ["Voice 1"]
        value: [0, 2, 4]
  - settings:
      - attribute: time_signatures
        value: ["2/8"]
`)
	require.NoError(t, err)

	assert.Equal(t, "grouped_rhythmic_staves", spec.TemplateName)
	assert.Equal(t, "Grouped Rhythmic Staves Score", spec.ScoreName)
	assert.Len(t, spec.ScoreModel.Voices(), 2)

	require.Len(t, spec.Segments, 2)
	assert.Equal(t, "2", spec.Segments[1].Name, "unnamed segments are named by position")

	settings := spec.Segments[0].Settings
	require.Len(t, settings, 4)

	ts := settings[0]
	assert.Equal(t, m.AttributeTimeSignatures, ts.Attribute)
	assert.Equal(t, []m.Pair{m.NewPair(4, 8), m.NewPair(3, 8)}, ts.Source.Value.Pairs)
	assert.Empty(t, ts.Contexts)
	assert.Equal(t, m.SegmentSelector("red"), ts.Selector)
	assert.True(t, ts.Persist)
	assert.True(t, ts.Fresh)

	divisions := settings[1]
	assert.Equal(t, []string{"Voice 1", "Voice 2"}, divisions.Contexts)
	assert.False(t, divisions.Persist)
	assert.True(t, divisions.Truncate)

	rhythm := settings[2]
	assert.Equal(t, m.RhythmValue("sixteenths"), rhythm.Source.Value)
	assert.False(t, rhythm.Fresh)

	assert.Equal(t, m.PitchClassesValue(0, 2, 4), settings[3].Source.Value)
}

func TestDecodeSpecification_RequestAndFrom(t *testing.T) {
	spec, err := decode(t, `
template: string_quartet
segments:
  - name: a
    settings:
      - attribute: time_signatures
        value: ["3/4"]
      - attribute: divisions
        contexts: ["Viola Voice"]
        request:
          voice: Cello Voice
          selector:
            segments: [a]
          callbacks:
            - kind: rotate
              index: -1
            - kind: slice
              start: 1
  - name: b
    settings:
      - attribute: time_signatures
        from:
          segment: a
          callbacks:
            - kind: reflect
`)
	require.NoError(t, err)

	request := spec.Segments[0].Settings[1].Source.Value
	require.Equal(t, m.ValueRequest, request.Kind)
	assert.Equal(t, "Cello Voice", request.Request.Voice)
	assert.Equal(t, m.SegmentsSelector("a", "a"), request.Request.Selector)
	require.Len(t, request.Request.Callbacks, 2)
	assert.Equal(t, m.Rotate(-1), request.Request.Callbacks[0])
	assert.Equal(t, 1, request.Request.Callbacks[1].Start)
	assert.Equal(t, int(^uint(0)>>1), request.Request.Callbacks[1].Stop)

	from := spec.Segments[1].Settings[0].Source
	require.Equal(t, m.SourceAttributeRequest, from.Kind)
	assert.Equal(t, m.AttributeTimeSignatures, from.AttributeRequest.Attribute, "from defaults to the setting's own attribute")
	assert.Equal(t, "a", from.AttributeRequest.Segment)
	assert.Equal(t, []m.Callback{m.Reflect()}, from.AttributeRequest.Callbacks)
}

func TestDecodeSpecification_Selectors(t *testing.T) {
	spec, err := decode(t, `
template: grouped_rhythmic_staves
segments:
  - name: a
    settings:
      - attribute: divisions
        contexts: ["Voice 1"]
        value: ["1/8"]
        selector:
          ratio: [1, 2]
          part: -1
      - attribute: divisions
        contexts: ["Voice 1"]
        value: ["1/8"]
        selector:
          measures: [0, 2]
      - attribute: divisions
        contexts: ["Voice 1"]
        value: ["1/8"]
        selector:
          ratio: [1, 1]
          part: 0
          by_count: true
          of:
            segments: [a, b]
  - name: b
`)
	require.NoError(t, err)

	settings := spec.Segments[0].Settings
	require.Len(t, settings, 3)

	assert.Equal(t, m.RatioPartSelector(m.SegmentSelector("a"), []int{1, 2}, -1), settings[0].Selector)
	assert.Equal(t, m.MeasuresSelector("a", 0, 2), settings[1].Selector)

	byCount := m.RatioPartSelector(m.SegmentsSelector("a", "b"), []int{1, 1}, 0)
	byCount.ByCount = true
	assert.Equal(t, byCount, settings[2].Selector)
}

func TestDecodeSpecification_Callbacks(t *testing.T) {
	stop := 3
	docs := []callbackDocument{
		{Kind: "rotate", Duration: "1/8"},
		{Kind: "repeat_to_length", Length: 5},
		{Kind: "repeat_to_duration", Duration: "3/4"},
		{Kind: "partition_by_ratio", Ratio: []int{1, 1}, Part: 1},
		{Kind: "partition_by_ratio_of_durations", Ratio: []int{2, 1}, Part: 0},
		{Kind: "slice", Start: 1, Stop: &stop},
		{Kind: "restrict", Timespan: []string{"0", "1/2"}},
	}

	callbacks, err := buildCallbacks(docs)
	require.NoError(t, err)

	assert.Equal(t, []m.Callback{
		m.RotateByDuration(m.NewDuration(1, 8)),
		m.RepeatToLength(5),
		m.RepeatToDuration(m.NewDuration(3, 4)),
		m.PartitionByRatio([]int{1, 1}, 1),
		m.PartitionByRatioOfDurations([]int{2, 1}, 0),
		m.Slice(1, 3),
		m.Restrict(m.Timespan{Stop: m.NewDuration(1, 2)}),
	}, callbacks)

	for _, bad := range []callbackDocument{
		{Kind: "shuffle"},
		{Kind: "repeat_to_duration"},
		{Kind: "restrict", Timespan: []string{"1/2"}},
		{Kind: "restrict", Timespan: []string{"1/2", "1/4"}},
	} {
		_, err := bad.build()
		assert.ErrorIsf(t, err, m.ErrConfiguration, "callback %+v", bad)
	}
}

func TestDecodeSpecification_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "missing template", doc: "segments: [{name: a}]\n"},
		{name: "no segments", doc: "template: string_quartet\n"},
		{name: "unknown template", doc: "template: orchestra\nsegments: [{name: a}]\n"},
		{name: "unknown field", doc: "template: string_quartet\ntempo: 90\nsegments: [{name: a}]\n"},
		{
			name: "unknown attribute",
			doc:  "template: string_quartet\nsegments:\n  - settings:\n      - attribute: dynamics\n        value: [\"1/4\"]\n",
		},
		{
			name: "no source",
			doc:  "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n",
		},
		{
			name: "two sources",
			doc: "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n" +
				"        value: [\"1/4\"]\n        from: {segment: \"1\"}\n",
		},
		{
			name: "request for rhythm",
			doc: "template: string_quartet\nsegments:\n  - settings:\n      - attribute: rhythm\n" +
				"        request: {voice: Cello Voice}\n",
		},
		{
			name: "request without voice",
			doc: "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n" +
				"        request: {callbacks: [{kind: reflect}]}\n",
		},
		{
			name: "bad pair",
			doc:  "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n        value: [\"3\"]\n",
		},
		{
			name: "rhythm list",
			doc:  "template: string_quartet\nsegments:\n  - settings:\n      - attribute: rhythm\n        value: [a, b]\n",
		},
		{
			name: "too many segments in selector",
			doc: "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n" +
				"        value: [\"1/4\"]\n        selector: {segments: [a, b, c]}\n",
		},
		{
			name: "measures need a stop",
			doc: "template: string_quartet\nsegments:\n  - settings:\n      - attribute: divisions\n" +
				"        value: [\"1/4\"]\n        selector: {measures: [1]}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, tt.doc)
			assert.ErrorIs(t, err, m.ErrConfiguration)
		})
	}
}

func TestParsePair(t *testing.T) {
	p, err := ParsePair(" 6 / 8 ")
	require.NoError(t, err)
	assert.Equal(t, m.NewPair(6, 8), p, "pairs are not reduced")

	for _, bad := range []string{"6", "a/8", "6/b", "0/8", "6/0", "-1/4"} {
		_, err := ParsePair(bad)
		assert.ErrorIsf(t, err, m.ErrConfiguration, "ParsePair(%q)", bad)
	}
}

func TestLocalSpecLoader_LoadExamples(t *testing.T) {
	loader := NewLocalSpecLoader()

	spec, err := loader.LoadSpecification(m.Path(examplePath(t, "two_segments.yaml")))
	require.NoError(t, err)
	assert.Len(t, spec.Segments, 2)
	assert.Equal(t, "red", spec.Segments[0].Name)

	spec, err = loader.LoadSpecification(m.Path(examplePath(t, "quartet", "string_quartet.yaml")))
	require.NoError(t, err)
	assert.Equal(t, "String Quartet Score", spec.ScoreName)

	_, err = loader.LoadSpecification(m.Path(examplePath(t, "missing.yaml")))
	assert.Error(t, err)
}

func TestLocalSpecLoader_ReadTemplate(t *testing.T) {
	loader := NewLocalSpecLoader()
	path := filepath.Join(t.TempDir(), "summary.tmpl")
	writeTestFile(t, path, "{{ len . }} reports\n")

	text, err := loader.ReadTemplate(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "{{ len . }} reports\n", text)

	_, err = loader.ReadTemplate(m.Path(filepath.Join(t.TempDir(), "missing.tmpl")))
	assert.Error(t, err)
}
