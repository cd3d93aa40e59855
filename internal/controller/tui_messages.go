package controller

import (
	m "github.com/mouse-blink/scorespec/internal/model"
)

// Message types.
type reportsMsg struct {
	reports []m.Report
}

// List item types.
type voiceItem struct {
	source string
	voice  m.VoiceReport
}

func (v voiceItem) FilterValue() string {
	return v.source + " " + v.voice.Name
}
