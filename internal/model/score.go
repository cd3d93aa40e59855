package model

// ContextKind is the notation context type of a score node.
type ContextKind string

const (
	ScoreContext         ContextKind = "Score"
	StaffGroupContext    ContextKind = "StaffGroup"
	StaffContext         ContextKind = "Staff"
	RhythmicStaffContext ContextKind = "RhythmicStaff"
	VoiceContext         ContextKind = "Voice"
	TimeSignatureContext ContextKind = "TimeSignatureContext"
)

// TimeSignatureContextName is the name of the context holding measures.
const TimeSignatureContextName = "TimeSignatureContext"

// LeafKind distinguishes notes, rests and spacer skips.
type LeafKind string

const (
	NoteLeaf LeafKind = "note"
	RestLeaf LeafKind = "rest"
	SkipLeaf LeafKind = "skip"
)

// Leaf is a single notation event. Pitch is a MIDI key number and only
// meaningful for notes; Tied joins a note to the next one.
type Leaf struct {
	Kind     LeafKind
	Duration Duration
	Pitch    int
	Tied     bool
}

// Container groups the leaves one rhythm maker produced for one division.
type Container struct {
	Leaves []Leaf
}

// NewContainer wraps leaves.
func NewContainer(leaves []Leaf) *Container {
	return &Container{Leaves: leaves}
}

func (c *Container) Duration() Duration {
	var total Duration
	for _, l := range c.Leaves {
		total = total.Add(l.Duration)
	}

	return total
}

// Measure is a skip-filled bar carrying a time signature.
type Measure struct {
	TimeSignature Pair
}

func (m Measure) Duration() Duration {
	return m.TimeSignature.Duration()
}

// Beam spans containers, weighted by Durations.
type Beam struct {
	Containers []*Container
	Durations  []Duration
}

// Context is a node of the score tree. Voices hold containers; the time
// signature context holds measures.
type Context struct {
	Name       string
	Kind       ContextKind
	Children   []*Context
	Containers []*Container
	Measures   []Measure
	Beams      []Beam
	parent     *Context
}

// NewContext builds a node and adopts children.
func NewContext(name string, kind ContextKind, children ...*Context) *Context {
	c := &Context{Name: name, Kind: kind}
	for _, child := range children {
		c.Append(child)
	}

	return c
}

func (c *Context) Parent() *Context {
	return c.parent
}

// Append adopts child as the last child.
func (c *Context) Append(child *Context) {
	child.parent = c
	c.Children = append(c.Children, child)
}

// Insert adopts child at index i.
func (c *Context) Insert(i int, child *Context) {
	child.parent = c
	c.Children = append(c.Children, nil)
	copy(c.Children[i+1:], c.Children[i:])
	c.Children[i] = child
}

// Extend appends containers to a voice.
func (c *Context) Extend(containers ...*Container) {
	c.Containers = append(c.Containers, containers...)
}

// Find returns the first node named name in depth-first order, or nil.
func (c *Context) Find(name string) *Context {
	if c.Name == name {
		return c
	}

	for _, child := range c.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}

	return nil
}

// Walk visits nodes depth-first until fn returns false.
func (c *Context) Walk(fn func(*Context) bool) bool {
	if !fn(c) {
		return false
	}

	for _, child := range c.Children {
		if !child.Walk(fn) {
			return false
		}
	}

	return true
}

// Voices returns every voice in depth-first order.
func (c *Context) Voices() []*Context {
	var voices []*Context

	c.Walk(func(node *Context) bool {
		if node.Kind == VoiceContext {
			voices = append(voices, node)
		}

		return true
	})

	return voices
}

// ImproperParentage returns c followed by its ancestors up to the root.
func (c *Context) ImproperParentage() []*Context {
	var chain []*Context
	for node := c; node != nil; node = node.parent {
		chain = append(chain, node)
	}

	return chain
}

// Duration is the contents' duration: containers for voices, measures for
// the time signature context, the longest child otherwise.
func (c *Context) Duration() Duration {
	var total Duration
	for _, container := range c.Containers {
		total = total.Add(container.Duration())
	}

	for _, m := range c.Measures {
		total = total.Add(m.Duration())
	}

	for _, child := range c.Children {
		total = MaxDuration(total, child.Duration())
	}

	return total
}

// Leaves flattens a voice's containers.
func (c *Context) Leaves() []Leaf {
	var leaves []Leaf
	for _, container := range c.Containers {
		leaves = append(leaves, container.Leaves...)
	}

	return leaves
}
