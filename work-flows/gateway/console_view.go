package gateway

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"practice-coach/utils"
	"practice-coach/work-flows/models"
)

// ConsoleView is a one-shot View: the notes are fixed up front and every
// output change is printed.
type ConsoleView struct {
	mu     sync.Mutex
	out    io.Writer
	notes  string
	state  models.OutputState
	output string
	quiet  bool
}

func NewConsoleView(out io.Writer, notes string) *ConsoleView {
	if out == nil {
		out = color.Output
	}
	return &ConsoleView{out: out, notes: notes, state: models.OutputStateEmpty}
}

// SetQuiet suppresses the transient loading output.
func (v *ConsoleView) SetQuiet(quiet bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.quiet = quiet
}

func (v *ConsoleView) Notes() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notes
}

func (v *ConsoleView) SetNotes(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notes = text
}

func (v *ConsoleView) FocusNotes() {}

func (v *ConsoleView) HideInput() {
	utils.PrintInfo("Lesson id found in URL, skipping manual notes")
}

func (v *ConsoleView) SetSubmit(string, bool) {}

func (v *ConsoleView) SetOutput(rendered string, state models.OutputState) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state = state
	v.output = rendered
	if v.quiet && state == models.OutputStateLoading {
		return
	}

	stateColor(state).Fprintf(v.out, "[%s]\n", state.Class())
	fmt.Fprintln(v.out, strings.TrimRight(rendered, "\n"))
}

// Output returns the last rendered output and its state.
func (v *ConsoleView) Output() (string, models.OutputState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.output, v.state
}

func stateColor(state models.OutputState) *color.Color {
	switch state {
	case models.OutputStateReady:
		return color.New(color.FgGreen, color.Bold)
	case models.OutputStateLoading:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}
