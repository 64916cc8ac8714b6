// Package tui is the full-screen practice coach form built on Bubble Tea.
package tui

import (
	"practice-coach/work-flows/coach"
	"practice-coach/work-flows/models"
)

// OutputMsg replaces the output region.
type OutputMsg struct {
	Content string
	State   models.OutputState
}

// SubmitMsg updates the Generate control.
type SubmitMsg struct {
	Label    string
	Disabled bool
}

// SetNotesMsg overwrites the notes field.
type SetNotesMsg struct {
	Text string
}

type FocusNotesMsg struct{}

type HideInputMsg struct{}

// GenerateDoneMsg reports a finished Init, Generate or Clear.
type GenerateDoneMsg struct {
	Result coach.Result
}

// QuitMsg signals the program to exit.
type QuitMsg struct{}
