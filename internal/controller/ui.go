// Package controller provides output adapters for displaying interpretation results.
package controller

import (
	m "github.com/mouse-blink/scorespec/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeInterpret StartMode = iota
	ModeView
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithInterpretMode sets the UI to report a fresh interpretation run.
func WithInterpretMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInterpret
	}
}

// WithViewMode sets the UI to browse stored reports.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithInspectMode sets the UI to show a single voice.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying interpretation reports.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayReports(reports []m.Report) error
	DisplayVoice(report m.Report, voice m.VoiceReport) error
	DisplayTemplate(text string, reports []m.Report) error
}
