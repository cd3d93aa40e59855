// Package templates builds the empty score trees specifications are written
// against.
package templates

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/scorespec/internal/model"
)

// Template names accepted by ByName.
const (
	GroupedRhythmicStaves = "grouped_rhythmic_staves"
	StringQuartet         = "string_quartet"
)

// Template instantiates a fresh score tree on every call.
type Template func() *m.Context

// NewGroupedRhythmicStaves returns a template with staffCount rhythmic
// staves, each holding one voice named "Voice N".
func NewGroupedRhythmicStaves(staffCount int) Template {
	return func() *m.Context {
		group := m.NewContext("Grouped Rhythmic Staves Staff Group", m.StaffGroupContext)

		for i := 1; i <= staffCount; i++ {
			voice := m.NewContext(fmt.Sprintf("Voice %d", i), m.VoiceContext)
			group.Append(m.NewContext(fmt.Sprintf("Staff %d", i), m.RhythmicStaffContext, voice))
		}

		return m.NewContext("Grouped Rhythmic Staves Score", m.ScoreContext, group)
	}
}

// NewStringQuartet returns a template with first violin, second violin, viola
// and cello staves.
func NewStringQuartet() Template {
	return func() *m.Context {
		group := m.NewContext("String Quartet Staff Group", m.StaffGroupContext)

		for _, name := range []string{"First Violin", "Second Violin", "Viola", "Cello"} {
			voice := m.NewContext(name+" Voice", m.VoiceContext)
			group.Append(m.NewContext(name+" Staff", m.StaffContext, voice))
		}

		return m.NewContext("String Quartet Score", m.ScoreContext, group)
	}
}

// ByName resolves a template name. staffCount only applies to grouped
// rhythmic staves and defaults to one staff.
func ByName(name string, staffCount int) (Template, error) {
	switch name {
	case GroupedRhythmicStaves:
		if staffCount <= 0 {
			staffCount = 1
		}

		return NewGroupedRhythmicStaves(staffCount), nil
	case StringQuartet:
		return NewStringQuartet(), nil
	default:
		return nil, fmt.Errorf("%w: unknown score template %q (known: %v)", m.ErrConfiguration, name, Names())
	}
}

// Names lists the known template names.
func Names() []string {
	names := []string{GroupedRhythmicStaves, StringQuartet}
	sort.Strings(names)

	return names
}
