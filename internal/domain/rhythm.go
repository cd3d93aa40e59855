package domain

import (
	"fmt"

	"github.com/mouse-blink/scorespec/internal/domain/rhythms"
	m "github.com/mouse-blink/scorespec/internal/model"
)

// interpretRhythm resolves the rhythm timeline of a voice, fuses continuing
// regions and calls each region's maker once with the voice divisions that
// start inside it. Uncovered stretches are filled with rests.
func (r *interpretation) interpretRhythm(voice *m.Context) error {
	scratch := r.spec.Context(voice.Name)
	if scratch.State != m.VoiceDivisionsResolved {
		return nil
	}

	scratch.State = m.VoiceRhythmPending

	commands, err := r.commandsFor(voice, m.AttributeRhythm)
	if err != nil {
		return err
	}

	timeline := ResolveOverlaps(commands)
	timeline = FillGaps(timeline, r.spec.Duration(), r.restFill(voice.Name))
	timeline = RefreshInherited(timeline)

	if err := requireFreshStart(timeline); err != nil {
		return fmt.Errorf("rhythm of %q: %w", voice.Name, err)
	}

	regions := FuseCommands(timeline)
	scratch.RhythmCommands = regions
	scratch.RhythmRegionDivisionLists = scratch.RhythmRegionDivisionLists[:0]

	divisions := scratch.VoiceDivisionList.Divisions

	var (
		offset m.Offset
		next   int
	)

	for _, region := range regions {
		var assigned []m.Division

		for next < len(divisions) && region.Timespan().ContainsOffset(offset) {
			assigned = append(assigned, divisions[next])
			offset = offset.Add(divisions[next].Duration())
			next++
		}

		if len(assigned) == 0 {
			continue
		}

		if err := r.makeRhythm(voice, region, assigned); err != nil {
			return fmt.Errorf("rhythm of %q: %w", voice.Name, err)
		}

		scratch.RhythmRegionDivisionLists = append(scratch.RhythmRegionDivisionLists, m.DivisionList{
			Kind:      m.RhythmRegionDivisionListKind,
			Divisions: assigned,
			Fresh:     region.Fresh,
			Truncate:  region.Truncate,
		})
	}

	if next != len(divisions) {
		return fmt.Errorf("%w: %d divisions of %q fall outside every rhythm region",
			m.ErrConsistency, len(divisions)-next, voice.Name)
	}

	scratch.State = m.VoiceRhythmResolved
	r.logger.Debug("rhythm resolved", "voice", voice.Name, "regions", len(regions), "containers", len(voice.Containers))

	return nil
}

func (r *interpretation) makeRhythm(voice *m.Context, region m.Command, divisions []m.Division) error {
	if region.Value.Kind != m.ValueRhythm {
		return fmt.Errorf("%w: rhythm cannot be a %s value", m.ErrConfiguration, region.Value.Kind)
	}

	maker, err := r.registry.Lookup(region.Value.Rhythm)
	if err != nil {
		return err
	}

	pairs := m.DivisionList{Divisions: divisions}.Pairs()

	groups, err := maker.Make(pairs)
	if err != nil {
		return err
	}

	if len(groups) != len(pairs) {
		return fmt.Errorf("%w: maker %q returned %d leaf groups for %d divisions",
			m.ErrConsistency, maker.Name(), len(groups), len(pairs))
	}

	containers := make([]*m.Container, 0, len(groups))
	for _, leaves := range groups {
		containers = append(containers, m.NewContainer(leaves))
	}

	voice.Extend(containers...)

	if maker.Beam() {
		durations := make([]m.Duration, 0, len(containers))
		for _, c := range containers {
			durations = append(durations, c.Duration())
		}

		voice.Beams = append(voice.Beams, m.Beam{Containers: containers, Durations: durations})
	}

	return nil
}

// restFill covers a gap with a fresh rest-filled command.
func (r *interpretation) restFill(voice string) func(m.Timespan) []m.Command {
	return func(gap m.Timespan) []m.Command {
		return []m.Command{{
			Attribute:   m.AttributeRhythm,
			Value:       m.RhythmValue(rhythms.RestFilled),
			SegmentName: r.segmentAt(gap.Start),
			ContextName: voice,
			StartOffset: gap.Start,
			StopOffset:  gap.Stop,
			Fresh:       true,
		}}
	}
}
