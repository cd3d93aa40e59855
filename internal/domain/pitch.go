package domain

import (
	"fmt"

	"github.com/mouse-blink/scorespec/internal/domain/rhythms"
	m "github.com/mouse-blink/scorespec/internal/model"
)

// applyPitchClasses walks the notes of a voice and gives each one the next
// pitch class of the region it starts in. Tied continuations keep the pitch
// of the note they continue; rests are untouched.
func (r *interpretation) applyPitchClasses(voice *m.Context) error {
	if len(voice.Containers) == 0 {
		return nil
	}

	commands, err := r.commandsFor(voice, m.AttributePitchClasses)
	if err != nil {
		return err
	}

	if len(commands) == 0 {
		return nil
	}

	regions := FuseCommands(RefreshInherited(ResolveOverlaps(commands)))
	r.spec.Context(voice.Name).PitchClassCommands = regions

	var (
		offset   m.Offset
		index    int
		current  = -1
		counter  int
		previous = rhythms.DefaultPitch
		tied     bool
	)

	for _, container := range voice.Containers {
		for i := range container.Leaves {
			leaf := &container.Leaves[i]
			start := offset
			offset = offset.Add(leaf.Duration)

			if leaf.Kind != m.NoteLeaf {
				tied = false

				continue
			}

			if tied {
				leaf.Pitch = previous
				tied = leaf.Tied

				continue
			}

			for index < len(regions) && regions[index].StopOffset.LessOrEqual(start) {
				index++
			}

			if index < len(regions) && regions[index].Timespan().ContainsOffset(start) {
				region := regions[index]
				if region.Value.Kind != m.ValuePitchClasses {
					return fmt.Errorf("%w: pitch classes of %q cannot be %s values", m.ErrConfiguration, voice.Name, region.Value.Kind)
				}

				if index != current {
					current, counter = index, 0
				}

				if pcs := region.Value.PitchClasses; len(pcs) > 0 {
					leaf.Pitch = rhythms.DefaultPitch + ((pcs[counter%len(pcs)]%12)+12)%12
					counter++
				}
			}

			previous, tied = leaf.Pitch, leaf.Tied
		}
	}

	r.logger.Debug("pitch classes applied", "voice", voice.Name, "regions", len(regions))

	return nil
}
