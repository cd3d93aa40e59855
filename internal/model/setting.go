package model

import (
	"fmt"
	"slices"
	"strings"
)

// Attribute names what a setting controls.
type Attribute string

const (
	AttributeTimeSignatures Attribute = "time_signatures"
	AttributeDivisions      Attribute = "divisions"
	AttributeRhythm         Attribute = "rhythm"
	AttributePitchClasses   Attribute = "pitch_classes"
)

// ValueKind tags the variant carried by a Value.
type ValueKind string

const (
	ValuePairs        ValueKind = "pairs"
	ValueRhythm       ValueKind = "rhythm"
	ValuePitchClasses ValueKind = "pitch_classes"
	// ValueRequest defers to another voice's divisions until regions are expanded.
	ValueRequest ValueKind = "request"
)

// Value is a setting payload.
type Value struct {
	Kind         ValueKind
	Pairs        []Pair
	Rhythm       string
	PitchClasses []int
	Request      *DivisionRequest
}

func PairsValue(pairs ...Pair) Value {
	return Value{Kind: ValuePairs, Pairs: append([]Pair(nil), pairs...)}
}

func RhythmValue(maker string) Value {
	return Value{Kind: ValueRhythm, Rhythm: maker}
}

func PitchClassesValue(pitchClasses ...int) Value {
	return Value{Kind: ValuePitchClasses, PitchClasses: append([]int(nil), pitchClasses...)}
}

func RequestValue(req DivisionRequest) Value {
	return Value{Kind: ValueRequest, Request: &req}
}

// IsZero reports whether no value was set.
func (v Value) IsZero() bool {
	return v.Kind == ""
}

// Equal compares resolved values.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case ValuePairs:
		return slices.Equal(v.Pairs, o.Pairs)
	case ValueRhythm:
		return v.Rhythm == o.Rhythm
	case ValuePitchClasses:
		return slices.Equal(v.PitchClasses, o.PitchClasses)
	case ValueRequest:
		if v.Request == nil || o.Request == nil {
			return v.Request == o.Request
		}

		return v.Request.Equal(*o.Request)
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValuePairs:
		parts := make([]string, 0, len(v.Pairs))
		for _, p := range v.Pairs {
			parts = append(parts, p.String())
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case ValueRhythm:
		return v.Rhythm
	case ValuePitchClasses:
		return fmt.Sprint(v.PitchClasses)
	case ValueRequest:
		return fmt.Sprintf("divisions of %q", v.Request.Voice)
	default:
		return "<none>"
	}
}

// DivisionRequest asks for the divisions another voice carries inside a
// timespan, transformed by callbacks.
type DivisionRequest struct {
	Voice     string
	Selector  Selector
	Callbacks []Callback
}

// Equal compares requests structurally.
func (r DivisionRequest) Equal(o DivisionRequest) bool {
	return r.Voice == o.Voice && selectorsEqual(r.Selector, o.Selector) && callbacksEqual(r.Callbacks, o.Callbacks)
}

// AttributeRequest copies the value an attribute resolved to for a context
// in a segment, transformed by callbacks.
type AttributeRequest struct {
	Attribute Attribute
	Segment   string
	Context   string
	Callbacks []Callback
}

// SourceKind tags the variant carried by a Source.
type SourceKind string

const (
	SourceValue            SourceKind = "value"
	SourceAttributeRequest SourceKind = "attribute_request"
)

// Source is what a setting resolves from.
type Source struct {
	Kind             SourceKind
	Value            Value
	AttributeRequest *AttributeRequest
}

// Literal wraps a value.
func Literal(v Value) Source {
	return Source{Kind: SourceValue, Value: v}
}

// FromAttribute resolves from another setting's value.
func FromAttribute(req AttributeRequest) Source {
	return Source{Kind: SourceAttributeRequest, AttributeRequest: &req}
}

// MultipleContextSetting is a setting as a composer declares it: one
// attribute, one source, one selector, any number of contexts.
type MultipleContextSetting struct {
	Attribute Attribute
	Source    Source
	Selector  Selector
	Contexts  []string
	Persist   bool
	Truncate  bool
	Fresh     bool
}

// Unpack returns one single-context setting per context; no contexts means
// the score context.
func (s MultipleContextSetting) Unpack(scoreName string) []SingleContextSetting {
	contexts := s.Contexts
	if len(contexts) == 0 {
		contexts = []string{scoreName}
	}

	settings := make([]SingleContextSetting, 0, len(contexts))
	for _, name := range contexts {
		settings = append(settings, SingleContextSetting{
			Attribute: s.Attribute,
			Source:    s.Source,
			Selector:  s.Selector,
			Context:   name,
			Persist:   s.Persist,
			Truncate:  s.Truncate,
			Fresh:     s.Fresh,
		})
	}

	return settings
}

// SingleContextSetting targets exactly one context.
type SingleContextSetting struct {
	Attribute Attribute
	Source    Source
	Selector  Selector
	Context   string
	Persist   bool
	Truncate  bool
	Fresh     bool
}

// ResolvedSetting is a single-context setting whose source has been
// evaluated against a specification.
type ResolvedSetting struct {
	SingleContextSetting
	ResolvedValue Value
	// Segment is the segment the setting was stored for.
	Segment string
	// Inherited marks copies made from persisted settings.
	Inherited bool
}

// CopyToSegment re-targets a persisted setting to the whole of segment as a
// continuation of itself.
func (r ResolvedSetting) CopyToSegment(segment string) ResolvedSetting {
	r.Selector = SegmentSelector(segment)
	r.Segment = segment
	r.Fresh = false
	r.Inherited = true

	return r
}

// SettingOption adjusts a setting while it is declared.
type SettingOption func(*MultipleContextSetting)

// WithContexts targets the named contexts instead of the score.
func WithContexts(names ...string) SettingOption {
	return func(s *MultipleContextSetting) {
		s.Contexts = append([]string(nil), names...)
	}
}

// WithSelector targets a timespan other than the declaring segment.
func WithSelector(sel Selector) SettingOption {
	return func(s *MultipleContextSetting) {
		s.Selector = sel
	}
}

// WithPersist sets whether later segments inherit the setting.
func WithPersist(persist bool) SettingOption {
	return func(s *MultipleContextSetting) {
		s.Persist = persist
	}
}

// WithTruncate forces a region boundary at the setting's start.
func WithTruncate() SettingOption {
	return func(s *MultipleContextSetting) {
		s.Truncate = true
	}
}

// WithFresh marks whether the setting starts something new.
func WithFresh(fresh bool) SettingOption {
	return func(s *MultipleContextSetting) {
		s.Fresh = fresh
	}
}

func selectorsEqual(a, b Selector) bool {
	if a.Kind != b.Kind || a.StartSegment != b.StartSegment || a.StopSegment != b.StopSegment ||
		a.StartMeasure != b.StartMeasure || a.StopMeasure != b.StopMeasure || a.Part != b.Part ||
		a.ByCount != b.ByCount || !slices.Equal(a.Ratio, b.Ratio) {
		return false
	}

	if (a.Inner == nil) != (b.Inner == nil) || (a.Request == nil) != (b.Request == nil) {
		return false
	}

	if a.Inner != nil && !selectorsEqual(*a.Inner, *b.Inner) {
		return false
	}

	return a.Request == nil || a.Request.Equal(*b.Request)
}

func callbacksEqual(a, b []Callback) bool {
	return slices.EqualFunc(a, b, func(x, y Callback) bool {
		return x.Kind == y.Kind && x.Index == y.Index && x.Duration == y.Duration && x.Length == y.Length &&
			slices.Equal(x.Ratio, y.Ratio) && x.Part == y.Part && x.Start == y.Start && x.Stop == y.Stop &&
			x.Timespan == y.Timespan
	})
}
