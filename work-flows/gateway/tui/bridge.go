package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"practice-coach/work-flows/models"
)

type sender interface {
	Send(msg tea.Msg)
}

// ProgramView implements coach.View on top of a running tea.Program. Every
// change is delivered as a message into the update loop; Notes reads a
// snapshot that the model refreshes after each update.
type ProgramView struct {
	mu      sync.Mutex
	program sender
	notes   string
}

func NewProgramView() *ProgramView {
	return &ProgramView{}
}

// Attach connects the view to the program. Messages sent before Attach are
// dropped.
func (v *ProgramView) Attach(p sender) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.program = p
}

func (v *ProgramView) send(msg tea.Msg) {
	v.mu.Lock()
	p := v.program
	v.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func (v *ProgramView) syncNotes(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notes = text
}

func (v *ProgramView) Notes() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notes
}

func (v *ProgramView) SetNotes(text string) {
	v.syncNotes(text)
	v.send(SetNotesMsg{Text: text})
}

func (v *ProgramView) FocusNotes() {
	v.send(FocusNotesMsg{})
}

func (v *ProgramView) HideInput() {
	v.send(HideInputMsg{})
}

func (v *ProgramView) SetOutput(rendered string, state models.OutputState) {
	v.send(OutputMsg{Content: rendered, State: state})
}

func (v *ProgramView) SetSubmit(label string, disabled bool) {
	v.send(SubmitMsg{Label: label, Disabled: disabled})
}
