package domain

import (
	"fmt"

	"github.com/mouse-blink/scorespec/internal/domain/sequences"
	m "github.com/mouse-blink/scorespec/internal/model"
)

// Evaluator resolves selectors and callback chains against one score
// specification. It never mutates the specification.
type Evaluator struct {
	spec *m.ScoreSpecification
}

// NewEvaluator binds an evaluator to spec. Segment timespans must already be
// set for Timespan to give meaningful results.
func NewEvaluator(spec *m.ScoreSpecification) *Evaluator {
	return &Evaluator{spec: spec}
}

// AnchorSegment names the segment a selector is declared against.
func (e *Evaluator) AnchorSegment(sel m.Selector) (string, error) {
	switch sel.Kind {
	case m.SelectSegments, m.SelectMeasures:
		if _, err := e.spec.SegmentIndex(sel.StartSegment); err != nil {
			return "", err
		}

		return sel.StartSegment, nil
	case m.SelectRatioPart:
		if sel.Inner == nil {
			return "", fmt.Errorf("%w: ratio selector without inner selector", m.ErrConfiguration)
		}

		return e.AnchorSegment(*sel.Inner)
	case m.SelectRequest:
		if sel.Request == nil {
			return "", fmt.Errorf("%w: request selector without request", m.ErrConfiguration)
		}

		return e.AnchorSegment(sel.Request.Selector)
	default:
		return "", fmt.Errorf("%w: unknown selector kind %q", m.ErrConfiguration, sel.Kind)
	}
}

// Timespan resolves a selector to score time.
func (e *Evaluator) Timespan(sel m.Selector) (m.Timespan, error) {
	switch sel.Kind {
	case m.SelectSegments:
		return e.segmentsTimespan(sel)
	case m.SelectMeasures:
		measures, err := e.measures(sel.StartSegment)
		if err != nil {
			return m.Timespan{}, err
		}

		if sel.StartMeasure < 0 || sel.StopMeasure > len(measures) || sel.StopMeasure < sel.StartMeasure {
			return m.Timespan{}, fmt.Errorf("%w: measures [%d, %d) of segment %q with %d measures",
				m.ErrLookup, sel.StartMeasure, sel.StopMeasure, sel.StartSegment, len(measures))
		}

		if sel.StartMeasure == sel.StopMeasure {
			segment, _ := e.spec.Segment(sel.StartSegment)
			at := segment.Timespan.Stop
			if sel.StartMeasure < len(measures) {
				at = measures[sel.StartMeasure].Start
			}

			return m.Timespan{Start: at, Stop: at}, nil
		}

		return m.Timespan{Start: measures[sel.StartMeasure].Start, Stop: measures[sel.StopMeasure-1].Stop}, nil
	case m.SelectRatioPart:
		return e.ratioPartTimespan(sel)
	case m.SelectRequest:
		if sel.Request == nil {
			return m.Timespan{}, fmt.Errorf("%w: request selector without request", m.ErrConfiguration)
		}

		return e.Timespan(sel.Request.Selector)
	default:
		return m.Timespan{}, fmt.Errorf("%w: unknown selector kind %q", m.ErrConfiguration, sel.Kind)
	}
}

func (e *Evaluator) segmentsTimespan(sel m.Selector) (m.Timespan, error) {
	start, err := e.spec.SegmentIndex(sel.StartSegment)
	if err != nil {
		return m.Timespan{}, err
	}

	stop := start
	if sel.StopSegment != "" {
		if stop, err = e.spec.SegmentIndex(sel.StopSegment); err != nil {
			return m.Timespan{}, err
		}
	}

	if stop < start {
		return m.Timespan{}, fmt.Errorf("%w: segment %q comes after %q", m.ErrConfiguration, sel.StartSegment, sel.StopSegment)
	}

	return m.Timespan{Start: e.spec.Segments[start].Timespan.Start, Stop: e.spec.Segments[stop].Timespan.Stop}, nil
}

func (e *Evaluator) ratioPartTimespan(sel m.Selector) (m.Timespan, error) {
	if sel.Inner == nil {
		return m.Timespan{}, fmt.Errorf("%w: ratio selector without inner selector", m.ErrConfiguration)
	}

	inner, err := e.Timespan(*sel.Inner)
	if err != nil {
		return m.Timespan{}, err
	}

	if sel.ByCount {
		return e.ratioPartByCount(inner, sel)
	}

	if len(sel.Ratio) == 0 {
		return m.Timespan{}, fmt.Errorf("%w: empty ratio", m.ErrConfiguration)
	}

	for _, r := range sel.Ratio {
		if r <= 0 {
			return m.Timespan{}, fmt.Errorf("%w: ratio %v has a nonpositive term", m.ErrConfiguration, sel.Ratio)
		}
	}

	spans := make([]m.Timespan, 0, len(sel.Ratio))
	start := inner.Start

	for _, w := range sequences.RatioWeights(inner.Duration(), sel.Ratio) {
		spans = append(spans, m.Timespan{Start: start, Stop: start.Add(w)})
		start = start.Add(w)
	}

	return pickSpan(spans, sel.Part)
}

// ratioPartByCount groups the measures inside inner by ratio of measure count.
func (e *Evaluator) ratioPartByCount(inner m.Timespan, sel m.Selector) (m.Timespan, error) {
	var measures []m.Timespan

	for _, ms := range e.spec.Measures() {
		if inner.Contains(ms.Timespan) {
			measures = append(measures, ms.Timespan)
		}
	}

	groups, err := sequences.PartitionByRatio(measures, sel.Ratio)
	if err != nil {
		return m.Timespan{}, err
	}

	group, err := sequences.Part(groups, sel.Part)
	if err != nil {
		return m.Timespan{}, err
	}

	if len(group) == 0 {
		return m.Timespan{}, fmt.Errorf("%w: ratio %v leaves part %d without measures", m.ErrConfiguration, sel.Ratio, sel.Part)
	}

	return m.Timespan{Start: group[0].Start, Stop: group[len(group)-1].Stop}, nil
}

func pickSpan(spans []m.Timespan, index int) (m.Timespan, error) {
	i := index
	if i < 0 {
		i += len(spans)
	}

	if i < 0 || i >= len(spans) {
		return m.Timespan{}, fmt.Errorf("%w: part %d of %d", m.ErrLookup, index, len(spans))
	}

	return spans[i], nil
}

// measures returns the measure timespans of one segment in score time.
func (e *Evaluator) measures(segmentName string) ([]m.Timespan, error) {
	if _, err := e.spec.SegmentIndex(segmentName); err != nil {
		return nil, err
	}

	var spans []m.Timespan

	for _, ms := range e.spec.Measures() {
		if ms.Segment == segmentName {
			spans = append(spans, ms.Timespan)
		}
	}

	return spans, nil
}

// ApplyCallbacks runs a callback chain over a resolved value. Pairs accept
// every callback; pitch classes accept only count-based ones.
func (e *Evaluator) ApplyCallbacks(value m.Value, callbacks []m.Callback) (m.Value, error) {
	if len(callbacks) == 0 {
		return value, nil
	}

	switch value.Kind {
	case m.ValuePairs:
		divisions := m.DivisionsFromPairs(value.Pairs)
		for _, cb := range callbacks {
			var err error
			if divisions, err = applyToDivisions(divisions, cb); err != nil {
				return m.Value{}, err
			}
		}

		return m.PairsValue(m.DivisionList{Divisions: divisions}.Pairs()...), nil
	case m.ValuePitchClasses:
		pcs := value.PitchClasses
		for _, cb := range callbacks {
			var err error
			if pcs, err = applyToSequence(pcs, cb); err != nil {
				return m.Value{}, err
			}
		}

		return m.PitchClassesValue(pcs...), nil
	default:
		return m.Value{}, fmt.Errorf("%w: callbacks cannot apply to %s values", m.ErrConfiguration, value.Kind)
	}
}

func applyToDivisions(divisions []m.Division, cb m.Callback) ([]m.Division, error) {
	switch cb.Kind {
	case m.CallbackRotate:
		if !cb.Duration.IsZero() {
			return sequences.RotateByDuration(divisions, cb.Duration)
		}
	case m.CallbackRepeatToDuration:
		return sequences.RepeatToWeight(divisions, cb.Duration)
	case m.CallbackPartitionByRatioOfDurations:
		parts, err := sequences.PartitionByRatioOfDurations(divisions, cb.Ratio)
		if err != nil {
			return nil, err
		}

		return sequences.Part(parts, cb.Part)
	case m.CallbackRestrict:
		return sequences.SliceByTimespan(divisions, cb.Timespan), nil
	}

	return applyToSequence(divisions, cb)
}

// applyToSequence handles the callbacks that only look at element positions.
func applyToSequence[T any](s []T, cb m.Callback) ([]T, error) {
	switch cb.Kind {
	case m.CallbackReflect:
		return sequences.Reflect(s), nil
	case m.CallbackRotate:
		if !cb.Duration.IsZero() {
			return nil, fmt.Errorf("%w: rotation by duration needs durations", m.ErrConfiguration)
		}

		return sequences.Rotate(s, cb.Index), nil
	case m.CallbackRepeatToLength:
		return sequences.RepeatToLength(s, cb.Length)
	case m.CallbackPartitionByRatio:
		parts, err := sequences.PartitionByRatio(s, cb.Ratio)
		if err != nil {
			return nil, err
		}

		return sequences.Part(parts, cb.Part)
	case m.CallbackSlice:
		return sequences.Slice(s, cb.Start, cb.Stop), nil
	case m.CallbackRepeatToDuration, m.CallbackPartitionByRatioOfDurations, m.CallbackRestrict:
		return nil, fmt.Errorf("%w: %s needs durations", m.ErrConfiguration, cb.Kind)
	default:
		return nil, fmt.Errorf("%w: unknown callback %q", m.ErrConfiguration, cb.Kind)
	}
}
