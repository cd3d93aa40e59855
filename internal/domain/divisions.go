package domain

import (
	"fmt"

	"github.com/mouse-blink/scorespec/internal/domain/sequences"
	m "github.com/mouse-blink/scorespec/internal/model"
)

func divisionsResolved(state m.VoiceState) bool {
	switch state {
	case m.VoiceDivisionsResolved, m.VoiceRhythmPending, m.VoiceRhythmResolved:
		return true
	default:
		return false
	}
}

// voiceDivisions derives, once per run, the division timeline of a voice and
// its per-segment slices. ok is false for voices without divisions or rhythm.
func (r *interpretation) voiceDivisions(name string) (m.DivisionList, bool, error) {
	scratch := r.spec.Context(name)
	if divisionsResolved(scratch.State) {
		return scratch.VoiceDivisionList, true, nil
	}

	if r.settled[name] {
		return m.DivisionList{}, false, nil
	}

	if r.resolving[name] {
		return m.DivisionList{}, false, fmt.Errorf("%w: divisions of %q request themselves", m.ErrConsistency, name)
	}

	voice := r.score.Find(name)
	if voice == nil || voice.Kind != m.VoiceContext {
		return m.DivisionList{}, false, fmt.Errorf("%w: no voice named %q", m.ErrLookup, name)
	}

	r.resolving[name] = true
	defer delete(r.resolving, name)

	commands, err := r.commandsFor(voice, m.AttributeDivisions)
	if err != nil {
		return m.DivisionList{}, false, err
	}

	if len(commands) == 0 && !r.hasSettings(voice, m.AttributeRhythm) {
		r.settled[name] = true
		r.logger.Debug("voice has no divisions", "voice", name)

		return m.DivisionList{}, false, nil
	}

	scratch.State = m.VoiceDivisionsPending

	timeline := ResolveOverlaps(commands)
	timeline = FillGaps(timeline, r.spec.Duration(), r.timeSignatureFill(name))
	timeline = RefreshInherited(timeline)

	regions, err := RegionCommands(timeline)
	if err != nil {
		return m.DivisionList{}, false, fmt.Errorf("divisions of %q: %w", name, err)
	}

	scratch.DivisionRegionCommands = regions
	scratch.DivisionRegionDivisionLists = scratch.DivisionRegionDivisionLists[:0]

	voiceList := m.DivisionList{Kind: m.VoiceDivisionListKind}

	for _, region := range regions {
		divisions, err := r.expandRegion(region)
		if err != nil {
			return m.DivisionList{}, false, fmt.Errorf("divisions of %q: %w", name, err)
		}

		scratch.DivisionRegionDivisionLists = append(scratch.DivisionRegionDivisionLists, m.DivisionList{
			Kind:      m.DivisionRegionDivisionListKind,
			Divisions: divisions,
			Fresh:     region.Fresh,
			Truncate:  region.Truncate,
		})
		voiceList.Divisions = append(voiceList.Divisions, divisions...)
	}

	if total := r.spec.Duration(); voiceList.Duration() != total {
		return m.DivisionList{}, false, fmt.Errorf("%w: divisions of %q sum to %s, score lasts %s",
			m.ErrConsistency, name, voiceList.Duration(), total)
	}

	segmentLists, err := r.segmentDivisionLists(voiceList, regions)
	if err != nil {
		return m.DivisionList{}, false, fmt.Errorf("divisions of %q: %w", name, err)
	}

	scratch.VoiceDivisionList = voiceList
	scratch.SegmentDivisionLists = segmentLists

	for i, segment := range r.spec.Segments {
		segmentScratch := segment.Context(name)
		segmentScratch.SegmentDivisionList = segmentLists[i]
		segmentScratch.SegmentPairs = segmentLists[i].Pairs()
	}

	scratch.State = m.VoiceDivisionsResolved
	r.logger.Debug("divisions resolved", "voice", name, "regions", len(regions), "divisions", voiceList.Len())

	return voiceList, true, nil
}

// timeSignatureFill covers a gap with the time signatures of the segments it
// crosses, one fresh command per segment.
func (r *interpretation) timeSignatureFill(voice string) func(m.Timespan) []m.Command {
	return func(gap m.Timespan) []m.Command {
		var commands []m.Command

		for _, segment := range r.spec.Segments {
			shared, ok := segment.Timespan.Intersection(gap)
			if !ok {
				continue
			}

			local := shared.Translate(segment.Timespan.Start.Neg())
			divisions := sequences.SliceByTimespan(m.DivisionsFromPairs(segment.TimeSignatures), local)

			commands = append(commands, m.Command{
				Attribute:   m.AttributeDivisions,
				Value:       m.PairsValue(m.DivisionList{Divisions: divisions}.Pairs()...),
				SegmentName: segment.Name,
				ContextName: voice,
				StartOffset: shared.Start,
				StopOffset:  shared.Stop,
				Fresh:       true,
			})
		}

		return commands
	}
}

// expandRegion repeats the region's divisions to exactly fill the region.
func (r *interpretation) expandRegion(region m.Command) ([]m.Division, error) {
	var source []m.Pair

	switch region.Value.Kind {
	case m.ValuePairs:
		source = region.Value.Pairs
	case m.ValueRequest:
		pairs, err := r.resolveRequest(region.Value.Request)
		if err != nil {
			return nil, err
		}

		source = pairs
	default:
		return nil, fmt.Errorf("%w: divisions cannot be %s values", m.ErrConfiguration, region.Value.Kind)
	}

	return sequences.RepeatToWeight(m.DivisionsFromPairs(source), region.Duration())
}

// resolveRequest reads the divisions another voice carries inside the
// request's timespan and applies the request's callbacks. Results are
// memoised per request.
func (r *interpretation) resolveRequest(req *m.DivisionRequest) ([]m.Pair, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty division request", m.ErrConfiguration)
	}

	if pairs, ok := r.requests[req]; ok {
		return pairs, nil
	}

	list, ok, err := r.voiceDivisions(req.Voice)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, fmt.Errorf("%w: voice %q has no divisions to request", m.ErrLookup, req.Voice)
	}

	span := m.Timespan{Stop: r.spec.Duration()}
	if req.Selector.Kind != "" {
		if span, err = r.eval.Timespan(req.Selector); err != nil {
			return nil, err
		}
	}

	divisions := sequences.SliceByTimespan(list.Divisions, span)

	value, err := r.eval.ApplyCallbacks(m.PairsValue(m.DivisionList{Divisions: divisions}.Pairs()...), req.Callbacks)
	if err != nil {
		return nil, err
	}

	r.requests[req] = value.Pairs

	return value.Pairs, nil
}

// segmentDivisionLists re-cuts a voice timeline at segment boundaries. A
// running overage tracks how far whole divisions started in earlier segments
// reach into later ones: the first division of a segment is left-open when
// overage comes in, the last is right-open when overage goes out.
func (r *interpretation) segmentDivisionLists(voice m.DivisionList, regions []m.Command) ([]m.DivisionList, error) {
	weights := r.spec.SegmentDurations

	parts, err := sequences.SplitByWeights(voice.Divisions, weights)
	if err != nil {
		return nil, err
	}

	if len(parts) != len(weights) {
		return nil, fmt.Errorf("%w: %d segment division lists for %d segments", m.ErrConsistency, len(parts), len(weights))
	}

	backgrounded := sequences.PartitionByBackgroundedWeights(voice.Divisions, weights)

	var (
		overage m.Duration
		total   m.Duration
	)

	lists := make([]m.DivisionList, 0, len(parts))

	for i, part := range parts {
		incoming := overage
		overage = overage.Add(sequences.Weight(backgrounded[i])).Sub(weights[i])

		divisions := append([]m.Division(nil), part...)
		if len(divisions) > 0 {
			divisions[0].LeftOpen = incoming.Sign() > 0
			divisions[len(divisions)-1].RightOpen = overage.Sign() > 0
		}

		list := m.DivisionList{Kind: m.SegmentDivisionListKind, Divisions: divisions}

		for _, region := range regions {
			if region.StartOffset == r.spec.Segments[i].Timespan.Start {
				list.Fresh = region.Fresh
				list.Truncate = region.Truncate
			}
		}

		total = total.Add(list.Duration())
		lists = append(lists, list)
	}

	if total != voice.Duration() {
		return nil, fmt.Errorf("%w: segment division lists sum to %s, voice lasts %s", m.ErrConsistency, total, voice.Duration())
	}

	return lists, nil
}
