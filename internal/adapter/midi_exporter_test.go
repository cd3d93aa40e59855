package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	m "github.com/mouse-blink/scorespec/internal/model"
)

type noteEvent struct {
	on   bool
	tick uint32
	key  uint8
}

func testScore(measures []m.Pair, leaves ...m.Leaf) *m.Context {
	tsc := m.NewContext(m.TimeSignatureContextName, m.TimeSignatureContext)
	for _, ts := range measures {
		tsc.Measures = append(tsc.Measures, m.Measure{TimeSignature: ts})
	}

	voice := m.NewContext("Voice 1", m.VoiceContext)
	voice.Extend(m.NewContainer(leaves))

	staff := m.NewContext("Staff 1", m.RhythmicStaffContext, voice)

	return m.NewContext("Test Score", m.ScoreContext, tsc, staff)
}

func readBack(t *testing.T, data []byte) *smf.SMF {
	t.Helper()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)

	return s
}

func noteEvents(track smf.Track) []noteEvent {
	var (
		events []noteEvent
		tick   uint32
	)

	for _, ev := range track {
		tick += ev.Delta

		var ch, key, vel uint8

		msg := midi.Message(ev.Message)

		switch {
		case msg.GetNoteOn(&ch, &key, &vel):
			events = append(events, noteEvent{on: true, tick: tick, key: key})
		case msg.GetNoteOff(&ch, &key, &vel):
			events = append(events, noteEvent{on: false, tick: tick, key: key})
		}
	}

	return events
}

func TestLocalMIDIExporter_TiedChainsSoundOnce(t *testing.T) {
	exporter := NewMIDIExporter(90)

	score := testScore(
		[]m.Pair{m.NewPair(3, 4)},
		m.Leaf{Kind: m.NoteLeaf, Duration: m.NewDuration(1, 4), Pitch: 62, Tied: true},
		m.Leaf{Kind: m.NoteLeaf, Duration: m.NewDuration(1, 8), Pitch: 62},
		m.Leaf{Kind: m.RestLeaf, Duration: m.NewDuration(1, 8)},
		m.Leaf{Kind: m.NoteLeaf, Duration: m.NewDuration(1, 4), Pitch: 200},
	)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, score))

	s := readBack(t, buf.Bytes())
	require.Len(t, s.Tracks, 2, "one conductor track and one voice track")

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	require.True(t, ok)
	assert.Equal(t, uint16(TicksPerQuarter), ticks.Resolution())

	assert.Equal(t, []noteEvent{
		{on: true, tick: 0, key: 62},
		{on: false, tick: 1440, key: 62},
		{on: true, tick: 1920, key: 127},
		{on: false, tick: 2880, key: 127},
	}, noteEvents(s.Tracks[1]))
}

func TestLocalMIDIExporter_ConductorTrack(t *testing.T) {
	exporter := NewMIDIExporter(0)

	score := testScore(
		[]m.Pair{m.NewPair(4, 8), m.NewPair(4, 8), m.NewPair(3, 8)},
		m.Leaf{Kind: m.RestLeaf, Duration: m.NewDuration(11, 8)},
	)

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, score))

	s := readBack(t, buf.Bytes())
	require.NotEmpty(t, s.Tracks)

	var (
		meters [][2]uint8
		tempo  float64
		tick   uint32
		at     []uint32
	)

	for _, ev := range s.Tracks[0] {
		tick += ev.Delta

		var num, den uint8
		if ev.Message.GetMetaMeter(&num, &den) {
			meters = append(meters, [2]uint8{num, den})
			at = append(at, tick)
		}

		var bpm float64
		if ev.Message.GetMetaTempo(&bpm) {
			tempo = bpm
		}
	}

	assert.Equal(t, [][2]uint8{{4, 8}, {3, 8}}, meters, "repeated meters are written once")
	assert.Equal(t, []uint32{0, 3840}, at)
	assert.InDelta(t, DefaultTempo, tempo, 0.01)

	assert.Empty(t, noteEvents(s.Tracks[1]), "rests sound nothing")
}

func TestLocalMIDIExporter_Errors(t *testing.T) {
	exporter := NewMIDIExporter(DefaultTempo)

	var buf bytes.Buffer
	assert.ErrorIs(t, exporter.Write(&buf, nil), m.ErrConfiguration)

	wide := testScore([]m.Pair{m.NewPair(300, 4)})
	assert.ErrorIs(t, exporter.Write(&buf, wide), m.ErrConfiguration)
}

func TestLocalMIDIExporter_Export(t *testing.T) {
	exporter := NewMIDIExporter(DefaultTempo)
	path := filepath.Join(t.TempDir(), "midi", "score.mid")

	score := testScore(
		[]m.Pair{m.NewPair(1, 4)},
		m.Leaf{Kind: m.NoteLeaf, Duration: m.NewDuration(1, 4), Pitch: 60},
	)

	require.NoError(t, exporter.Export(m.Path(path), score))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "MThd", string(data[:4]))
}

func TestTicks(t *testing.T) {
	assert.Equal(t, uint32(0), ticks(m.Duration{}))
	assert.Equal(t, uint32(960), ticks(m.NewDuration(1, 4)))
	assert.Equal(t, uint32(320), ticks(m.NewDuration(1, 12)), "triplet eighths land on whole ticks")
	assert.Equal(t, uint32(137), ticks(m.NewDuration(1, 28)), "septuplets round to the nearest tick")
}

func TestMIDIKey(t *testing.T) {
	assert.Equal(t, uint8(0), midiKey(-5))
	assert.Equal(t, uint8(64), midiKey(64))
	assert.Equal(t, uint8(127), midiKey(128))
}
