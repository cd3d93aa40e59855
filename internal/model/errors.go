package model

import "errors"

var (
	// ErrConfiguration reports a declared ratio, count or value that cannot
	// be applied to the available material.
	ErrConfiguration = errors.New("configuration error")
	// ErrLookup reports a reference to a segment, context, voice or index
	// that does not exist.
	ErrLookup = errors.New("lookup error")
	// ErrConsistency reports a violated internal invariant. It signals a bad
	// specification or an interpreter defect and is never retried.
	ErrConsistency = errors.New("consistency error")
)
