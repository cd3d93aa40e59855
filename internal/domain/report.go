package domain

import (
	m "github.com/mouse-blink/scorespec/internal/model"
)

// BuildReport summarises an interpreted specification.
func BuildReport(source m.Path, spec *m.ScoreSpecification, score *m.Context) m.Report {
	report := m.Report{
		Source:   source,
		Score:    spec.ScoreName,
		Template: spec.TemplateName,
		Duration: spec.Duration().String(),
	}

	for _, segment := range spec.Segments {
		sr := m.SegmentReport{Name: segment.Name, Timespan: segment.Timespan.String()}
		for _, ts := range segment.TimeSignatures {
			sr.TimeSignatures = append(sr.TimeSignatures, ts.String())
		}

		report.Segments = append(report.Segments, sr)
	}

	if score == nil {
		return report
	}

	for _, voice := range score.Voices() {
		report.Voices = append(report.Voices, voiceReport(spec, voice))
	}

	return report
}

func voiceReport(spec *m.ScoreSpecification, voice *m.Context) m.VoiceReport {
	scratch := spec.Context(voice.Name)

	vr := m.VoiceReport{
		Name:       voice.Name,
		State:      scratch.State,
		Containers: len(voice.Containers),
		Beams:      len(voice.Beams),
	}

	for i, region := range scratch.DivisionRegionCommands {
		entry := region.Timespan().String() + " " + region.Value.String()
		if i < len(scratch.DivisionRegionDivisionLists) {
			entry += " -> " + scratch.DivisionRegionDivisionLists[i].String()
		}

		vr.DivisionRegions = append(vr.DivisionRegions, entry)
	}

	for i, list := range scratch.SegmentDivisionLists {
		vr.Segments = append(vr.Segments, m.VoiceSegmentReport{
			Segment:   spec.Segments[i].Name,
			Divisions: list.String(),
		})
	}

	for _, region := range scratch.RhythmCommands {
		vr.RhythmRegions = append(vr.RhythmRegions, region.Timespan().String()+" "+region.Value.String())
	}

	for _, leaf := range voice.Leaves() {
		switch leaf.Kind {
		case m.NoteLeaf:
			vr.Notes++
		case m.RestLeaf:
			vr.Rests++
		}
	}

	return vr
}
