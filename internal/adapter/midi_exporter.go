package adapter

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	m "github.com/mouse-blink/scorespec/internal/model"
)

const (
	// TicksPerQuarter is the resolution of exported files.
	TicksPerQuarter = 960
	// DefaultTempo is used when the exporter is given none.
	DefaultTempo = 120.0

	noteVelocity = 96
	drumChannel  = 9
)

// MIDIExporter writes interpreted scores as standard MIDI files.
type MIDIExporter interface {
	Export(path m.Path, score *m.Context) error
}

// LocalMIDIExporter writes SMF type 1 files: a conductor track carrying
// tempo and meters, then one track per voice.
type LocalMIDIExporter struct {
	tempo float64
}

// NewMIDIExporter constructs a MIDIExporter playing at bpm quarter notes
// per minute.
func NewMIDIExporter(bpm float64) *LocalMIDIExporter {
	if bpm <= 0 {
		bpm = DefaultTempo
	}

	return &LocalMIDIExporter{tempo: bpm}
}

// Export writes score to path, creating parent directories.
func (e *LocalMIDIExporter) Export(path m.Path, score *m.Context) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("create midi directory: %w", err)
	}

	f, err := os.Create(string(path))
	if err != nil {
		return fmt.Errorf("create midi file %s: %w", path, err)
	}

	if err := e.Write(f, score); err != nil {
		_ = f.Close()

		return fmt.Errorf("export %s: %w", path, err)
	}

	return f.Close()
}

// Write encodes score to w.
func (e *LocalMIDIExporter) Write(w io.Writer, score *m.Context) error {
	if score == nil {
		return fmt.Errorf("%w: no score to export", m.ErrConfiguration)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	conductor, err := e.conductorTrack(score)
	if err != nil {
		return err
	}

	if err := s.Add(conductor); err != nil {
		return fmt.Errorf("add conductor track: %w", err)
	}

	channel := uint8(0)

	for _, voice := range score.Voices() {
		if err := s.Add(voiceTrack(voice, channel)); err != nil {
			return fmt.Errorf("add track %q: %w", voice.Name, err)
		}

		channel = (channel + 1) % 16
		if channel == drumChannel {
			channel++
		}
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("write midi: %w", err)
	}

	return nil
}

func (e *LocalMIDIExporter) conductorTrack(score *m.Context) (smf.Track, error) {
	var (
		tr       smf.Track
		offset   m.Offset
		last     uint32
		previous m.Pair
	)

	tr.Add(0, smf.MetaTrackSequenceName(score.Name))
	tr.Add(0, smf.MetaTempo(e.tempo))

	if tsc := score.Find(m.TimeSignatureContextName); tsc != nil {
		for i, measure := range tsc.Measures {
			ts := measure.TimeSignature
			if i == 0 || ts != previous {
				if ts.Numerator > math.MaxUint8 || ts.Denominator > math.MaxUint8 {
					return nil, fmt.Errorf("%w: time signature %s cannot be written to midi", m.ErrConfiguration, ts)
				}

				at := ticks(offset)
				tr.Add(at-last, smf.MetaMeter(uint8(ts.Numerator), uint8(ts.Denominator)))
				last = at
			}

			previous = ts
			offset = offset.Add(measure.Duration())
		}
	}

	tr.Close(ticks(offset) - last)

	return tr, nil
}

// voiceTrack sounds each tied chain of notes as one note.
func voiceTrack(voice *m.Context, channel uint8) smf.Track {
	var (
		tr       smf.Track
		offset   m.Offset
		last     uint32
		sounding bool
		key      uint8
	)

	tr.Add(0, smf.MetaTrackSequenceName(voice.Name))

	for _, leaf := range voice.Leaves() {
		at := ticks(offset)

		if sounding && leaf.Kind != m.NoteLeaf {
			tr.Add(at-last, midi.NoteOff(channel, key))
			last, sounding = at, false
		}

		if leaf.Kind == m.NoteLeaf && !sounding {
			key = midiKey(leaf.Pitch)
			tr.Add(at-last, midi.NoteOn(channel, key, noteVelocity))
			last, sounding = at, true
		}

		offset = offset.Add(leaf.Duration)

		if sounding && !leaf.Tied {
			at = ticks(offset)
			tr.Add(at-last, midi.NoteOff(channel, key))
			last, sounding = at, false
		}
	}

	end := ticks(offset)
	if sounding {
		tr.Add(end-last, midi.NoteOff(channel, key))
		last = end
	}

	tr.Close(end - last)

	return tr
}

// ticks converts a whole-note offset to ticks, rounding tuplet positions.
func ticks(o m.Offset) uint32 {
	const whole = 4 * TicksPerQuarter

	return uint32((o.Num()*whole + o.Den()/2) / o.Den())
}

func midiKey(pitch int) uint8 {
	return uint8(min(max(pitch, 0), 127))
}
