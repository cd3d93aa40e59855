package model

// Path represents a file system path.
type Path string

// Report is the outcome of interpreting one specification file.
type Report struct {
	RunID    string          `yaml:"run_id"`
	Source   Path            `yaml:"source"`
	Hash     string          `yaml:"hash"`
	Score    string          `yaml:"score"`
	Template string          `yaml:"template"`
	Duration string          `yaml:"duration"`
	Segments []SegmentReport `yaml:"segments"`
	Voices   []VoiceReport   `yaml:"voices"`
}

// SegmentReport describes one segment of an interpreted score.
type SegmentReport struct {
	Name           string   `yaml:"name"`
	Timespan       string   `yaml:"timespan"`
	TimeSignatures []string `yaml:"time_signatures"`
}

// VoiceReport summarises what interpretation produced for one voice.
type VoiceReport struct {
	Name            string               `yaml:"name"`
	State           VoiceState           `yaml:"state"`
	DivisionRegions []string             `yaml:"division_regions,omitempty"`
	Segments        []VoiceSegmentReport `yaml:"segments,omitempty"`
	RhythmRegions   []string             `yaml:"rhythm_regions,omitempty"`
	Containers      int                  `yaml:"containers"`
	Notes           int                  `yaml:"notes"`
	Rests           int                  `yaml:"rests"`
	Beams           int                  `yaml:"beams"`
}

// VoiceSegmentReport is one segment division list of a voice.
type VoiceSegmentReport struct {
	Segment   string `yaml:"segment"`
	Divisions string `yaml:"divisions"`
}

// Voice returns the named voice report.
func (r Report) Voice(name string) (VoiceReport, bool) {
	for _, v := range r.Voices {
		if v.Name == name {
			return v, true
		}
	}

	return VoiceReport{}, false
}
