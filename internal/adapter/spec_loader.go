package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/scorespec/internal/domain/templates"
	m "github.com/mouse-blink/scorespec/internal/model"
)

// SpecLoader reads score specifications and report templates.
type SpecLoader interface {
	LoadSpecification(path m.Path) (*m.ScoreSpecification, error)
	ReadTemplate(path m.Path) (string, error)
}

// LocalSpecLoader reads YAML specification files from the local filesystem.
type LocalSpecLoader struct{}

// NewLocalSpecLoader constructs a SpecLoader backed by the filesystem.
func NewLocalSpecLoader() *LocalSpecLoader {
	return &LocalSpecLoader{}
}

// LoadSpecification parses the file at path.
func (l *LocalSpecLoader) LoadSpecification(path m.Path) (*m.ScoreSpecification, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read specification %s: %w", path, err)
	}

	spec, err := DecodeSpecification(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load specification %s: %w", path, err)
	}

	return spec, nil
}

// ReadTemplate returns the text of a report template file.
func (l *LocalSpecLoader) ReadTemplate(path m.Path) (string, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}

	return string(data), nil
}

type specDocument struct {
	Template string            `yaml:"template"`
	Staves   int               `yaml:"staves"`
	Segments []segmentDocument `yaml:"segments"`
}

type segmentDocument struct {
	Name     string            `yaml:"name"`
	Settings []settingDocument `yaml:"settings"`
}

type settingDocument struct {
	Attribute string            `yaml:"attribute"`
	Contexts  []string          `yaml:"contexts"`
	Value     yaml.Node         `yaml:"value"`
	Request   *requestDocument  `yaml:"request"`
	From      *fromDocument     `yaml:"from"`
	Selector  *selectorDocument `yaml:"selector"`
	Persist   *bool             `yaml:"persist"`
	Fresh     *bool             `yaml:"fresh"`
	Truncate  bool              `yaml:"truncate"`
}

type requestDocument struct {
	Voice     string             `yaml:"voice"`
	Selector  *selectorDocument  `yaml:"selector"`
	Callbacks []callbackDocument `yaml:"callbacks"`
}

type fromDocument struct {
	Attribute string             `yaml:"attribute"`
	Segment   string             `yaml:"segment"`
	Context   string             `yaml:"context"`
	Callbacks []callbackDocument `yaml:"callbacks"`
}

type selectorDocument struct {
	Segment  string            `yaml:"segment"`
	Segments []string          `yaml:"segments"`
	Measures []int             `yaml:"measures"`
	Ratio    []int             `yaml:"ratio"`
	Part     int               `yaml:"part"`
	ByCount  bool              `yaml:"by_count"`
	Of       *selectorDocument `yaml:"of"`
}

type callbackDocument struct {
	Kind     string   `yaml:"kind"`
	Index    int      `yaml:"index"`
	Duration string   `yaml:"duration"`
	Length   int      `yaml:"length"`
	Ratio    []int    `yaml:"ratio"`
	Part     int      `yaml:"part"`
	Start    int      `yaml:"start"`
	Stop     *int     `yaml:"stop"`
	Timespan []string `yaml:"timespan"`
}

// DecodeSpecification parses a YAML specification document.
func DecodeSpecification(r io.Reader) (*m.ScoreSpecification, error) {
	var doc specDocument

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty specification", m.ErrConfiguration)
		}

		return nil, fmt.Errorf("%w: %w", m.ErrConfiguration, err)
	}

	return doc.build()
}

func (d specDocument) build() (*m.ScoreSpecification, error) {
	if d.Template == "" {
		return nil, fmt.Errorf("%w: template is required", m.ErrConfiguration)
	}

	if len(d.Segments) == 0 {
		return nil, fmt.Errorf("%w: at least one segment is required", m.ErrConfiguration)
	}

	template, err := templates.ByName(d.Template, d.Staves)
	if err != nil {
		return nil, err
	}

	spec := m.NewScoreSpecification(d.Template, template)

	for _, sd := range d.Segments {
		segment := spec.AppendSegment(sd.Name)

		for i, setting := range sd.Settings {
			if err := setting.declare(segment); err != nil {
				return nil, fmt.Errorf("segment %q setting %d: %w", segment.Name, i+1, err)
			}
		}
	}

	return spec, nil
}

func (s settingDocument) declare(segment *m.SegmentSpecification) error {
	attribute := m.Attribute(s.Attribute)

	switch attribute {
	case m.AttributeTimeSignatures, m.AttributeDivisions, m.AttributeRhythm, m.AttributePitchClasses:
	default:
		return fmt.Errorf("%w: unknown attribute %q", m.ErrConfiguration, s.Attribute)
	}

	source, err := s.source(attribute)
	if err != nil {
		return err
	}

	opts := []m.SettingOption{m.WithContexts(s.Contexts...)}

	if s.Selector != nil {
		sel, err := s.Selector.build(segment.Name)
		if err != nil {
			return err
		}

		opts = append(opts, m.WithSelector(sel))
	}

	if s.Persist != nil {
		opts = append(opts, m.WithPersist(*s.Persist))
	}

	if s.Fresh != nil {
		opts = append(opts, m.WithFresh(*s.Fresh))
	}

	if s.Truncate {
		opts = append(opts, m.WithTruncate())
	}

	segment.Set(attribute, source, opts...)

	return nil
}

func (s settingDocument) source(attribute m.Attribute) (m.Source, error) {
	given := 0
	for _, set := range []bool{!s.Value.IsZero(), s.Request != nil, s.From != nil} {
		if set {
			given++
		}
	}

	if given != 1 {
		return m.Source{}, fmt.Errorf("%w: %s needs exactly one of value, request or from", m.ErrConfiguration, attribute)
	}

	switch {
	case s.Request != nil:
		if attribute != m.AttributeDivisions {
			return m.Source{}, fmt.Errorf("%w: only divisions can be requested from a voice", m.ErrConfiguration)
		}

		req, err := s.Request.build()
		if err != nil {
			return m.Source{}, err
		}

		return m.Literal(m.RequestValue(req)), nil
	case s.From != nil:
		callbacks, err := buildCallbacks(s.From.Callbacks)
		if err != nil {
			return m.Source{}, err
		}

		from := m.Attribute(s.From.Attribute)
		if from == "" {
			from = attribute
		}

		return m.FromAttribute(m.AttributeRequest{
			Attribute: from,
			Segment:   s.From.Segment,
			Context:   s.From.Context,
			Callbacks: callbacks,
		}), nil
	default:
		value, err := decodeValue(attribute, &s.Value)
		if err != nil {
			return m.Source{}, err
		}

		return m.Literal(value), nil
	}
}

func decodeValue(attribute m.Attribute, node *yaml.Node) (m.Value, error) {
	switch attribute {
	case m.AttributeRhythm:
		var name string
		if err := node.Decode(&name); err != nil {
			return m.Value{}, fmt.Errorf("%w: rhythm must name a maker: %w", m.ErrConfiguration, err)
		}

		return m.RhythmValue(name), nil
	case m.AttributePitchClasses:
		var pcs []int
		if err := node.Decode(&pcs); err != nil {
			return m.Value{}, fmt.Errorf("%w: pitch classes must be integers: %w", m.ErrConfiguration, err)
		}

		return m.PitchClassesValue(pcs...), nil
	default:
		var texts []string
		if err := node.Decode(&texts); err != nil {
			return m.Value{}, fmt.Errorf("%w: %s must be a list of n/d pairs: %w", m.ErrConfiguration, attribute, err)
		}

		pairs := make([]m.Pair, 0, len(texts))

		for _, text := range texts {
			p, err := ParsePair(text)
			if err != nil {
				return m.Value{}, err
			}

			pairs = append(pairs, p)
		}

		return m.PairsValue(pairs...), nil
	}
}

// ParsePair parses "n/d" without reducing it.
func ParsePair(text string) (m.Pair, error) {
	numText, denText, ok := strings.Cut(strings.TrimSpace(text), "/")
	if !ok {
		return m.Pair{}, fmt.Errorf("%w: pair %q is not n/d", m.ErrConfiguration, text)
	}

	num, err := strconv.ParseInt(strings.TrimSpace(numText), 10, 64)
	if err != nil {
		return m.Pair{}, fmt.Errorf("%w: pair %q: %w", m.ErrConfiguration, text, err)
	}

	den, err := strconv.ParseInt(strings.TrimSpace(denText), 10, 64)
	if err != nil {
		return m.Pair{}, fmt.Errorf("%w: pair %q: %w", m.ErrConfiguration, text, err)
	}

	if num <= 0 || den <= 0 {
		return m.Pair{}, fmt.Errorf("%w: pair %q must be positive", m.ErrConfiguration, text)
	}

	return m.NewPair(num, den), nil
}

func (r requestDocument) build() (m.DivisionRequest, error) {
	if r.Voice == "" {
		return m.DivisionRequest{}, fmt.Errorf("%w: request needs a voice", m.ErrConfiguration)
	}

	req := m.DivisionRequest{Voice: r.Voice}

	if r.Selector != nil {
		sel, err := r.Selector.build("")
		if err != nil {
			return m.DivisionRequest{}, err
		}

		req.Selector = sel
	}

	callbacks, err := buildCallbacks(r.Callbacks)
	if err != nil {
		return m.DivisionRequest{}, err
	}

	req.Callbacks = callbacks

	return req, nil
}

// build turns a selector document into a selector. segment is the declaring
// segment, used when the document names none.
func (s selectorDocument) build(segment string) (m.Selector, error) {
	if s.Segment != "" {
		segment = s.Segment
	}

	switch {
	case s.Of != nil || len(s.Ratio) > 0:
		inner := m.SegmentSelector(segment)

		if s.Of != nil {
			var err error
			if inner, err = s.Of.build(segment); err != nil {
				return m.Selector{}, err
			}
		}

		sel := m.RatioPartSelector(inner, s.Ratio, s.Part)
		sel.ByCount = s.ByCount

		return sel, nil
	case len(s.Segments) > 0:
		if len(s.Segments) > 2 {
			return m.Selector{}, fmt.Errorf("%w: segments selector takes a start and an optional stop", m.ErrConfiguration)
		}

		stop := s.Segments[len(s.Segments)-1]

		return m.SegmentsSelector(s.Segments[0], stop), nil
	case len(s.Measures) > 0:
		if len(s.Measures) != 2 {
			return m.Selector{}, fmt.Errorf("%w: measures selector takes [start, stop)", m.ErrConfiguration)
		}

		if segment == "" {
			return m.Selector{}, fmt.Errorf("%w: measures selector needs a segment", m.ErrConfiguration)
		}

		return m.MeasuresSelector(segment, s.Measures[0], s.Measures[1]), nil
	case segment != "":
		return m.SegmentSelector(segment), nil
	default:
		return m.Selector{}, fmt.Errorf("%w: selector selects nothing", m.ErrConfiguration)
	}
}

func buildCallbacks(docs []callbackDocument) ([]m.Callback, error) {
	callbacks := make([]m.Callback, 0, len(docs))

	for _, doc := range docs {
		cb, err := doc.build()
		if err != nil {
			return nil, err
		}

		callbacks = append(callbacks, cb)
	}

	return callbacks, nil
}

func (c callbackDocument) build() (m.Callback, error) {
	duration := func() (m.Duration, error) {
		if c.Duration == "" {
			return m.Duration{}, fmt.Errorf("%w: %s needs a duration", m.ErrConfiguration, c.Kind)
		}

		return m.ParseDuration(c.Duration)
	}

	switch m.CallbackKind(c.Kind) {
	case m.CallbackReflect:
		return m.Reflect(), nil
	case m.CallbackRotate:
		if c.Duration != "" {
			d, err := duration()
			if err != nil {
				return m.Callback{}, err
			}

			return m.RotateByDuration(d), nil
		}

		return m.Rotate(c.Index), nil
	case m.CallbackRepeatToLength:
		return m.RepeatToLength(c.Length), nil
	case m.CallbackRepeatToDuration:
		d, err := duration()
		if err != nil {
			return m.Callback{}, err
		}

		return m.RepeatToDuration(d), nil
	case m.CallbackPartitionByRatio:
		return m.PartitionByRatio(c.Ratio, c.Part), nil
	case m.CallbackPartitionByRatioOfDurations:
		return m.PartitionByRatioOfDurations(c.Ratio, c.Part), nil
	case m.CallbackSlice:
		stop := int(^uint(0) >> 1)
		if c.Stop != nil {
			stop = *c.Stop
		}

		return m.Slice(c.Start, stop), nil
	case m.CallbackRestrict:
		if len(c.Timespan) != 2 {
			return m.Callback{}, fmt.Errorf("%w: restrict needs a [start, stop] timespan", m.ErrConfiguration)
		}

		start, err := m.ParseDuration(c.Timespan[0])
		if err != nil {
			return m.Callback{}, err
		}

		stop, err := m.ParseDuration(c.Timespan[1])
		if err != nil {
			return m.Callback{}, err
		}

		t, err := m.NewTimespan(start, stop)
		if err != nil {
			return m.Callback{}, err
		}

		return m.Restrict(t), nil
	default:
		return m.Callback{}, fmt.Errorf("%w: unknown callback %q", m.ErrConfiguration, c.Kind)
	}
}
