package model

import (
	"fmt"
	"strconv"
)

// VoiceState tracks how far interpretation got for one voice.
type VoiceState string

const (
	VoiceUnset             VoiceState = "UNSET"
	VoiceDivisionsPending  VoiceState = "DIVISIONS_PENDING"
	VoiceDivisionsResolved VoiceState = "DIVISIONS_RESOLVED"
	VoiceRhythmPending     VoiceState = "RHYTHM_PENDING"
	VoiceRhythmResolved    VoiceState = "RHYTHM_RESOLVED"
)

// ContextScratch holds the intermediate results the interpreter stashes for
// one context.
type ContextScratch struct {
	State                       VoiceState
	DivisionRegionCommands      []Command
	DivisionRegionDivisionLists []DivisionList
	VoiceDivisionList           DivisionList
	SegmentDivisionLists        []DivisionList
	RhythmCommands              []Command
	RhythmRegionDivisionLists   []DivisionList
	PitchClassCommands          []Command
}

// SegmentContextScratch holds per-segment results for one context.
type SegmentContextScratch struct {
	SegmentDivisionList DivisionList
	SegmentPairs        []Pair
}

// PersistenceStore keeps the persisted resolved settings of a score keyed by
// context and attribute.
type PersistenceStore struct {
	settings map[string]map[Attribute][]ResolvedSetting
	order    []string
}

func NewPersistenceStore() *PersistenceStore {
	return &PersistenceStore{settings: make(map[string]map[Attribute][]ResolvedSetting)}
}

// Get returns the settings persisted for context and attribute.
func (p *PersistenceStore) Get(context string, attribute Attribute) []ResolvedSetting {
	return p.settings[context][attribute]
}

// Put appends a setting under its context and attribute.
func (p *PersistenceStore) Put(setting ResolvedSetting) {
	byAttribute, ok := p.settings[setting.Context]
	if !ok {
		byAttribute = make(map[Attribute][]ResolvedSetting)
		p.settings[setting.Context] = byAttribute
		p.order = append(p.order, setting.Context)
	}

	byAttribute[setting.Attribute] = append(byAttribute[setting.Attribute], setting)
}

// Clear drops everything persisted for context and attribute.
func (p *PersistenceStore) Clear(context string, attribute Attribute) {
	delete(p.settings[context], attribute)
}

// Contexts lists, in first-persisted order, the contexts holding attribute.
func (p *PersistenceStore) Contexts(attribute Attribute) []string {
	var contexts []string

	for _, name := range p.order {
		if len(p.settings[name][attribute]) > 0 {
			contexts = append(contexts, name)
		}
	}

	return contexts
}

// SegmentSpecification is one segment: declared settings in, resolved
// settings and per-context results out.
type SegmentSpecification struct {
	Name                  string
	Settings              []MultipleContextSetting
	SingleContextSettings []SingleContextSetting
	TimeSignatures        []Pair
	Timespan              Timespan
	Resolved              map[string]map[Attribute][]ResolvedSetting
	Contexts              map[string]*SegmentContextScratch
}

func newSegmentSpecification(name string) *SegmentSpecification {
	return &SegmentSpecification{
		Name:     name,
		Resolved: make(map[string]map[Attribute][]ResolvedSetting),
		Contexts: make(map[string]*SegmentContextScratch),
	}
}

// Duration sums the segment's time signatures.
func (s *SegmentSpecification) Duration() Duration {
	var total Duration
	for _, ts := range s.TimeSignatures {
		total = total.Add(ts.Duration())
	}

	return total
}

// Set declares a setting anchored to this segment. Settings persist and are
// fresh unless options say otherwise.
func (s *SegmentSpecification) Set(attribute Attribute, source Source, opts ...SettingOption) MultipleContextSetting {
	setting := MultipleContextSetting{
		Attribute: attribute,
		Source:    source,
		Selector:  SegmentSelector(s.Name),
		Persist:   true,
		Fresh:     true,
	}

	for _, opt := range opts {
		opt(&setting)
	}

	s.Settings = append(s.Settings, setting)

	return setting
}

func (s *SegmentSpecification) SetTimeSignatures(pairs []Pair, opts ...SettingOption) MultipleContextSetting {
	return s.Set(AttributeTimeSignatures, Literal(PairsValue(pairs...)), opts...)
}

func (s *SegmentSpecification) SetDivisions(pairs []Pair, opts ...SettingOption) MultipleContextSetting {
	return s.Set(AttributeDivisions, Literal(PairsValue(pairs...)), opts...)
}

// SetDivisionRequest reads divisions from another voice.
func (s *SegmentSpecification) SetDivisionRequest(req DivisionRequest, opts ...SettingOption) MultipleContextSetting {
	return s.Set(AttributeDivisions, Literal(RequestValue(req)), opts...)
}

func (s *SegmentSpecification) SetRhythm(maker string, opts ...SettingOption) MultipleContextSetting {
	return s.Set(AttributeRhythm, Literal(RhythmValue(maker)), opts...)
}

func (s *SegmentSpecification) SetPitchClasses(pitchClasses []int, opts ...SettingOption) MultipleContextSetting {
	return s.Set(AttributePitchClasses, Literal(PitchClassesValue(pitchClasses...)), opts...)
}

// Store records a resolved setting under its context.
func (s *SegmentSpecification) Store(setting ResolvedSetting) {
	byAttribute, ok := s.Resolved[setting.Context]
	if !ok {
		byAttribute = make(map[Attribute][]ResolvedSetting)
		s.Resolved[setting.Context] = byAttribute
	}

	byAttribute[setting.Attribute] = append(byAttribute[setting.Attribute], setting)
}

// ResolvedSettings returns what was stored for context and attribute.
func (s *SegmentSpecification) ResolvedSettings(context string, attribute Attribute) []ResolvedSetting {
	return s.Resolved[context][attribute]
}

// Context returns the scratch for a context, creating it on first use.
func (s *SegmentSpecification) Context(name string) *SegmentContextScratch {
	scratch, ok := s.Contexts[name]
	if !ok {
		scratch = &SegmentContextScratch{}
		s.Contexts[name] = scratch
	}

	return scratch
}

// MeasureSpan is one measure positioned in the score.
type MeasureSpan struct {
	Segment       string
	Index         int
	TimeSignature Pair
	Timespan      Timespan
}

// ScoreSpecification is the root aggregate handed to the interpreter.
type ScoreSpecification struct {
	TemplateName     string
	Template         func() *Context
	ScoreName        string
	ScoreModel       *Context
	Segments         []*SegmentSpecification
	Contexts         map[string]*ContextScratch
	Persisted        *PersistenceStore
	SegmentDurations []Duration
	Interpreted      bool
}

// NewScoreSpecification builds a specification for a score template. The
// template is instantiated once up front so context names can be looked up.
func NewScoreSpecification(templateName string, template func() *Context) *ScoreSpecification {
	scoreModel := template()

	return &ScoreSpecification{
		TemplateName: templateName,
		Template:     template,
		ScoreName:    scoreModel.Name,
		ScoreModel:   scoreModel,
		Contexts:     make(map[string]*ContextScratch),
		Persisted:    NewPersistenceStore(),
	}
}

// AppendSegment adds a segment; an empty name becomes its 1-based position.
func (s *ScoreSpecification) AppendSegment(name string) *SegmentSpecification {
	if name == "" {
		name = strconv.Itoa(len(s.Segments) + 1)
	}

	segment := newSegmentSpecification(name)
	s.Segments = append(s.Segments, segment)

	return segment
}

// SegmentIndex returns the position of the named segment.
func (s *ScoreSpecification) SegmentIndex(name string) (int, error) {
	for i, segment := range s.Segments {
		if segment.Name == name {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: no segment named %q", ErrLookup, name)
}

// Segment returns the named segment.
func (s *ScoreSpecification) Segment(name string) (*SegmentSpecification, error) {
	i, err := s.SegmentIndex(name)
	if err != nil {
		return nil, err
	}

	return s.Segments[i], nil
}

// Context returns the scratch for a context, creating it on first use.
func (s *ScoreSpecification) Context(name string) *ContextScratch {
	scratch, ok := s.Contexts[name]
	if !ok {
		scratch = &ContextScratch{State: VoiceUnset}
		s.Contexts[name] = scratch
	}

	return scratch
}

// Duration sums the segment durations.
func (s *ScoreSpecification) Duration() Duration {
	var total Duration
	for _, segment := range s.Segments {
		total = total.Add(segment.Duration())
	}

	return total
}

// Measures positions every declared time signature in score time.
func (s *ScoreSpecification) Measures() []MeasureSpan {
	var (
		measures []MeasureSpan
		offset   Offset
	)

	for _, segment := range s.Segments {
		for i, ts := range segment.TimeSignatures {
			stop := offset.Add(ts.Duration())
			measures = append(measures, MeasureSpan{
				Segment:       segment.Name,
				Index:         i,
				TimeSignature: ts,
				Timespan:      Timespan{Start: offset, Stop: stop},
			})
			offset = stop
		}
	}

	return measures
}
