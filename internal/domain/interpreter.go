package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/scorespec/internal/domain/rhythms"
	m "github.com/mouse-blink/scorespec/internal/model"
)

// Interpreter turns a score specification into a populated score.
type Interpreter interface {
	Interpret(spec *m.ScoreSpecification) (*m.Context, error)
}

// InterpreterOption configures a ConcreteInterpreter.
type InterpreterOption func(*concreteInterpreter)

// WithLogger sets the logger interpretation stages report to.
func WithLogger(logger *slog.Logger) InterpreterOption {
	return func(ci *concreteInterpreter) {
		if logger != nil {
			ci.logger = logger
		}
	}
}

// WithRegistry sets the rhythm makers specifications can name. Gaps are
// filled with rests, so a registry without the rest-filled maker gets one.
func WithRegistry(registry *rhythms.Registry) InterpreterOption {
	return func(ci *concreteInterpreter) {
		if registry == nil {
			return
		}

		if _, err := registry.Lookup(rhythms.RestFilled); err != nil {
			registry.Register(rhythms.NewRestFilledMaker())
		}

		ci.registry = registry
	}
}

type concreteInterpreter struct {
	logger   *slog.Logger
	registry *rhythms.Registry
}

// NewConcreteInterpreter creates an Interpreter with the built-in rhythm
// makers and a discarding logger unless options say otherwise.
func NewConcreteInterpreter(opts ...InterpreterOption) Interpreter {
	ci := &concreteInterpreter{
		logger:   slog.New(slog.DiscardHandler),
		registry: rhythms.Default(),
	}

	for _, opt := range opts {
		opt(ci)
	}

	return ci
}

// Interpret runs the whole pipeline over spec. A specification can only be
// interpreted once because interpretation writes its scratch state.
func (ci *concreteInterpreter) Interpret(spec *m.ScoreSpecification) (*m.Context, error) {
	if spec == nil || spec.Template == nil {
		return nil, fmt.Errorf("%w: specification without score template", m.ErrConfiguration)
	}

	if spec.Interpreted {
		return nil, fmt.Errorf("%w: specification already interpreted", m.ErrConsistency)
	}

	spec.Interpreted = true

	run := &interpretation{
		spec:      spec,
		logger:    ci.logger.With("score", spec.TemplateName),
		registry:  ci.registry,
		eval:      NewEvaluator(spec),
		requests:  make(map[*m.DivisionRequest][]m.Pair),
		resolving: make(map[string]bool),
		settled:   make(map[string]bool),
	}

	return run.interpret()
}

// interpretation holds the state of one run over one specification.
type interpretation struct {
	spec     *m.ScoreSpecification
	score    *m.Context
	logger   *slog.Logger
	registry *rhythms.Registry
	eval     *Evaluator

	requests  map[*m.DivisionRequest][]m.Pair
	resolving map[string]bool
	settled   map[string]bool
}

func (r *interpretation) interpret() (*m.Context, error) {
	r.score = r.spec.Template()
	r.spec.ScoreModel = r.score
	r.spec.ScoreName = r.score.Name

	timeSignatures := m.NewContext(m.TimeSignatureContextName, m.TimeSignatureContext)
	r.score.Insert(0, timeSignatures)

	voices := r.score.Voices()
	for _, voice := range voices {
		r.spec.Context(voice.Name)
	}

	if err := r.unpackSettings(); err != nil {
		return nil, err
	}

	if err := r.resolveAttribute(m.AttributeTimeSignatures); err != nil {
		return nil, err
	}

	found, err := r.applyTimeSignatures(timeSignatures)
	if err != nil {
		return nil, err
	}

	if !found {
		r.logger.Info("no time signatures declared, leaving voices unset")

		return r.score, nil
	}

	for _, attribute := range []m.Attribute{m.AttributeDivisions, m.AttributeRhythm, m.AttributePitchClasses} {
		if err := r.resolveAttribute(attribute); err != nil {
			return nil, err
		}
	}

	for _, voice := range voices {
		if _, _, err := r.voiceDivisions(voice.Name); err != nil {
			return nil, err
		}
	}

	for _, voice := range voices {
		if err := r.interpretRhythm(voice); err != nil {
			return nil, err
		}
	}

	for _, voice := range voices {
		if err := r.applyPitchClasses(voice); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("interpretation finished", "voices", len(voices), "duration", r.spec.Duration().String())

	return r.score, nil
}

// unpackSettings splits every declared setting into one setting per context.
func (r *interpretation) unpackSettings() error {
	for _, segment := range r.spec.Segments {
		segment.SingleContextSettings = nil

		for _, setting := range segment.Settings {
			for _, single := range setting.Unpack(r.score.Name) {
				if r.score.Find(single.Context) == nil {
					return fmt.Errorf("%w: segment %q targets unknown context %q", m.ErrLookup, segment.Name, single.Context)
				}

				segment.SingleContextSettings = append(segment.SingleContextSettings, single)
			}
		}
	}

	return nil
}

// applyTimeSignatures fixes each segment's time signatures, adds skip-filled
// measures and lays segments end to end. It reports whether any segment has
// time signatures.
func (r *interpretation) applyTimeSignatures(context *m.Context) (bool, error) {
	var (
		offset m.Offset
		found  bool
	)

	r.spec.SegmentDurations = r.spec.SegmentDurations[:0]

	for _, segment := range r.spec.Segments {
		for _, single := range segment.SingleContextSettings {
			if single.Attribute == m.AttributeTimeSignatures && single.Context != r.score.Name {
				return false, fmt.Errorf("%w: time signatures of segment %q must target the score, not %q",
					m.ErrConfiguration, segment.Name, single.Context)
			}
		}

		settings := segment.ResolvedSettings(r.score.Name, m.AttributeTimeSignatures)
		if declared := countDeclared(settings); declared > 1 {
			return false, fmt.Errorf("%w: segment %q declares time signatures %d times", m.ErrConfiguration, segment.Name, declared)
		}

		if len(settings) > 0 {
			value := settings[len(settings)-1].ResolvedValue
			if value.Kind != m.ValuePairs {
				return false, fmt.Errorf("%w: time signatures of segment %q are %s", m.ErrConfiguration, segment.Name, value.Kind)
			}

			for _, p := range value.Pairs {
				if p.Numerator <= 0 || p.Denominator <= 0 {
					return false, fmt.Errorf("%w: invalid time signature %s in segment %q", m.ErrConfiguration, p, segment.Name)
				}
			}

			segment.TimeSignatures = append([]m.Pair(nil), value.Pairs...)
		}

		if len(segment.TimeSignatures) > 0 {
			found = true
		}

		for _, ts := range segment.TimeSignatures {
			context.Measures = append(context.Measures, m.Measure{TimeSignature: ts})
		}

		duration := segment.Duration()
		segment.Timespan = m.Timespan{Start: offset, Stop: offset.Add(duration)}
		offset = segment.Timespan.Stop
		r.spec.SegmentDurations = append(r.spec.SegmentDurations, duration)
	}

	r.logger.Debug("time signatures applied", "segments", len(r.spec.Segments), "duration", offset.String())

	return found, nil
}

func countDeclared(settings []m.ResolvedSetting) int {
	n := 0
	for _, s := range settings {
		if !s.Inherited {
			n++
		}
	}

	return n
}

// segmentAt names the segment holding offset, or the last one.
func (r *interpretation) segmentAt(offset m.Offset) string {
	for _, segment := range r.spec.Segments {
		if segment.Timespan.ContainsOffset(offset) {
			return segment.Name
		}
	}

	if len(r.spec.Segments) == 0 {
		return ""
	}

	return r.spec.Segments[len(r.spec.Segments)-1].Name
}

func requireFreshStart(timeline []m.Command) error {
	if len(timeline) > 0 && !timeline[0].Fresh {
		return fmt.Errorf("%w: first %s command %s is not fresh", m.ErrConsistency, timeline[0].Attribute, timeline[0])
	}

	return nil
}
