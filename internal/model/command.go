package model

import "fmt"

// Command is a resolved setting materialised on the voice timeline.
// Uninterpreted commands may overlap; the region commands produced from them
// never do. Commands are owned by a single interpretation.
type Command struct {
	Attribute   Attribute
	Value       Value
	SegmentName string
	ContextName string
	StartOffset Offset
	StopOffset  Offset
	Fresh       bool
	Truncate    bool
	Inherited   bool
}

func (c Command) Duration() Duration {
	return c.StopOffset.Sub(c.StartOffset)
}

func (c Command) Timespan() Timespan {
	return Timespan{Start: c.StartOffset, Stop: c.StopOffset}
}

func (c Command) String() string {
	return fmt.Sprintf("%s %s %s %s fresh=%t truncate=%t",
		c.Attribute, c.ContextName, c.Timespan(), c.Value, c.Fresh, c.Truncate)
}
