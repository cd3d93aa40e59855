package domain

import (
	"fmt"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// resolveAttribute resolves every setting of one attribute segment by segment.
// Settings are filed under the segment their selector is anchored to.
// Contexts without a local declaration inherit the persisted setting of the
// previous segments as a continuation covering the whole segment; declared
// settings that persist replace what was persisted for their context.
func (r *interpretation) resolveAttribute(attribute m.Attribute) error {
	anchored := make(map[string][]m.SingleContextSetting)

	for _, segment := range r.spec.Segments {
		for _, single := range segment.SingleContextSettings {
			if single.Attribute != attribute {
				continue
			}

			anchor, err := r.eval.AnchorSegment(single.Selector)
			if err != nil {
				return fmt.Errorf("resolve %s in segment %q: %w", attribute, segment.Name, err)
			}

			anchored[anchor] = append(anchored[anchor], single)
		}
	}

	for _, segment := range r.spec.Segments {
		declared := anchored[segment.Name]

		local := make(map[string]bool, len(declared))
		for _, single := range declared {
			local[single.Context] = true
		}

		for _, context := range r.spec.Persisted.Contexts(attribute) {
			if local[context] {
				continue
			}

			persisted := r.spec.Persisted.Get(context, attribute)
			segment.Store(persisted[len(persisted)-1].CopyToSegment(segment.Name))
		}

		cleared := make(map[string]bool)

		for _, single := range declared {
			resolved, err := r.resolveSetting(single, segment.Name)
			if err != nil {
				return fmt.Errorf("resolve %s in segment %q: %w", attribute, segment.Name, err)
			}

			segment.Store(resolved)

			// Any local declaration ends what the context inherited, persisted or not.
			if !cleared[single.Context] {
				r.spec.Persisted.Clear(single.Context, attribute)
				cleared[single.Context] = true
			}

			if single.Persist {
				r.spec.Persisted.Put(resolved)
			}
		}
	}

	r.logger.Debug("attribute resolved", "attribute", string(attribute), "persisted", len(r.spec.Persisted.Contexts(attribute)))

	return nil
}

func (r *interpretation) resolveSetting(single m.SingleContextSetting, segment string) (m.ResolvedSetting, error) {
	value, err := r.resolveSource(single.Source)
	if err != nil {
		return m.ResolvedSetting{}, err
	}

	return m.ResolvedSetting{SingleContextSetting: single, ResolvedValue: value, Segment: segment}, nil
}

// resolveSource evaluates a setting source. Division requests stay deferred
// inside the value until regions are expanded.
func (r *interpretation) resolveSource(source m.Source) (m.Value, error) {
	switch source.Kind {
	case m.SourceValue, "":
		return source.Value, nil
	case m.SourceAttributeRequest:
		req := source.AttributeRequest
		if req == nil {
			return m.Value{}, fmt.Errorf("%w: attribute request source without request", m.ErrConfiguration)
		}

		value, err := r.nearestValue(req.Segment, req.Context, req.Attribute)
		if err != nil {
			return m.Value{}, err
		}

		return r.eval.ApplyCallbacks(value, req.Callbacks)
	default:
		return m.Value{}, fmt.Errorf("%w: unknown source kind %q", m.ErrConfiguration, source.Kind)
	}
}

// nearestValue returns the value attribute resolved to for context in a
// segment, walking out through enclosing contexts until one has a setting.
func (r *interpretation) nearestValue(segmentName, contextName string, attribute m.Attribute) (m.Value, error) {
	segment, err := r.spec.Segment(segmentName)
	if err != nil {
		return m.Value{}, err
	}

	if contextName == "" {
		contextName = r.score.Name
	}

	context := r.score.Find(contextName)
	if context == nil {
		return m.Value{}, fmt.Errorf("%w: no context named %q", m.ErrLookup, contextName)
	}

	for _, node := range context.ImproperParentage() {
		if settings := segment.ResolvedSettings(node.Name, attribute); len(settings) > 0 {
			return settings[len(settings)-1].ResolvedValue, nil
		}
	}

	return m.Value{}, fmt.Errorf("%w: no %s resolved for %q in segment %q", m.ErrLookup, attribute, contextName, segmentName)
}

// commandsFor materialises every resolved setting of attribute that applies
// to voice, in declaration order: segment by segment, outermost context
// first so that inner contexts override.
func (r *interpretation) commandsFor(voice *m.Context, attribute m.Attribute) ([]m.Command, error) {
	chain := voice.ImproperParentage()

	var commands []m.Command

	for _, segment := range r.spec.Segments {
		for i := len(chain) - 1; i >= 0; i-- {
			for _, setting := range segment.ResolvedSettings(chain[i].Name, attribute) {
				span, err := r.eval.Timespan(setting.Selector)
				if err != nil {
					return nil, fmt.Errorf("%s of %q in segment %q: %w", attribute, setting.Context, segment.Name, err)
				}

				commands = append(commands, m.Command{
					Attribute:   attribute,
					Value:       setting.ResolvedValue,
					SegmentName: segment.Name,
					ContextName: setting.Context,
					StartOffset: span.Start,
					StopOffset:  span.Stop,
					Fresh:       setting.Fresh,
					Truncate:    setting.Truncate,
					Inherited:   setting.Inherited,
				})
			}
		}
	}

	return commands, nil
}

// hasSettings reports whether any segment resolved attribute for voice or an
// enclosing context.
func (r *interpretation) hasSettings(voice *m.Context, attribute m.Attribute) bool {
	for _, segment := range r.spec.Segments {
		for _, node := range voice.ImproperParentage() {
			if len(segment.ResolvedSettings(node.Name, attribute)) > 0 {
				return true
			}
		}
	}

	return false
}
