package model

// SelectorKind tags the variant carried by a Selector.
type SelectorKind string

const (
	// SelectSegments selects StartSegment through StopSegment inclusive.
	SelectSegments SelectorKind = "segments"
	// SelectRatioPart selects one part of Inner's timespan divided by Ratio.
	SelectRatioPart SelectorKind = "ratio_part"
	// SelectMeasures selects measures [StartMeasure, StopMeasure) of StartSegment.
	SelectMeasures SelectorKind = "measures"
	// SelectRequest forwards to the selector of Request.
	SelectRequest SelectorKind = "request"
)

// Selector is a lazily evaluated reference to a timespan of the score. It is
// plain data; the domain evaluator resolves it against a specification.
type Selector struct {
	Kind         SelectorKind
	StartSegment string
	StopSegment  string
	StartMeasure int
	StopMeasure  int
	Ratio        []int
	Part         int
	// ByCount partitions Inner by measure count instead of by duration.
	ByCount bool
	Inner   *Selector
	Request *DivisionRequest
}

// SegmentSelector selects one whole segment.
func SegmentSelector(name string) Selector {
	return Selector{Kind: SelectSegments, StartSegment: name, StopSegment: name}
}

// SegmentsSelector selects start through stop inclusive.
func SegmentsSelector(start, stop string) Selector {
	return Selector{Kind: SelectSegments, StartSegment: start, StopSegment: stop}
}

// MeasuresSelector selects measures [start, stop) of a segment, counting from 0.
func MeasuresSelector(segment string, start, stop int) Selector {
	return Selector{Kind: SelectMeasures, StartSegment: segment, StartMeasure: start, StopMeasure: stop}
}

// RatioPartSelector selects part of inner's timespan partitioned by ratio of
// durations. Negative parts count from the end.
func RatioPartSelector(inner Selector, ratio []int, part int) Selector {
	return Selector{Kind: SelectRatioPart, Inner: &inner, Ratio: append([]int(nil), ratio...), Part: part}
}

// MeasureRatioPartSelector selects part of a segment's measures partitioned
// by ratio of measure counts.
func MeasureRatioPartSelector(segment string, ratio []int, part int) Selector {
	s := RatioPartSelector(SegmentSelector(segment), ratio, part)
	s.ByCount = true

	return s
}

// RequestSelector selects whatever timespan req reads from.
func RequestSelector(req DivisionRequest) Selector {
	return Selector{Kind: SelectRequest, Request: &req}
}

// CallbackKind tags the variant carried by a Callback.
type CallbackKind string

const (
	CallbackReflect                     CallbackKind = "reflect"
	CallbackRotate                      CallbackKind = "rotate"
	CallbackRepeatToLength              CallbackKind = "repeat_to_length"
	CallbackRepeatToDuration            CallbackKind = "repeat_to_duration"
	CallbackPartitionByRatio            CallbackKind = "partition_by_ratio"
	CallbackPartitionByRatioOfDurations CallbackKind = "partition_by_ratio_of_durations"
	CallbackSlice                       CallbackKind = "slice"
	CallbackRestrict                    CallbackKind = "restrict"
)

// Callback is one step of a value-sequence transformation chain. Only the
// fields of its Kind are meaningful.
type Callback struct {
	Kind CallbackKind
	// Index rotates by element count; Duration, when nonzero, rotates by
	// material duration instead.
	Index    int
	Duration Duration
	Length   int
	Ratio    []int
	Part     int
	Start    int
	Stop     int
	Timespan Timespan
}

func Reflect() Callback {
	return Callback{Kind: CallbackReflect}
}

// Rotate rotates right by n elements; negative n rotates left.
func Rotate(n int) Callback {
	return Callback{Kind: CallbackRotate, Index: n}
}

// RotateByDuration rotates right by d worth of trailing material.
func RotateByDuration(d Duration) Callback {
	return Callback{Kind: CallbackRotate, Duration: d}
}

func RepeatToLength(n int) Callback {
	return Callback{Kind: CallbackRepeatToLength, Length: n}
}

func RepeatToDuration(d Duration) Callback {
	return Callback{Kind: CallbackRepeatToDuration, Duration: d}
}

func PartitionByRatio(ratio []int, part int) Callback {
	return Callback{Kind: CallbackPartitionByRatio, Ratio: append([]int(nil), ratio...), Part: part}
}

func PartitionByRatioOfDurations(ratio []int, part int) Callback {
	return Callback{Kind: CallbackPartitionByRatioOfDurations, Ratio: append([]int(nil), ratio...), Part: part}
}

// Slice keeps elements [start, stop) with negative indices counted from the end.
func Slice(start, stop int) Callback {
	return Callback{Kind: CallbackSlice, Start: start, Stop: stop}
}

// Restrict keeps the material inside t, measured from the start of the sequence.
func Restrict(t Timespan) Callback {
	return Callback{Kind: CallbackRestrict, Timespan: t}
}
