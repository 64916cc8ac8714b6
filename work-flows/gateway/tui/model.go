package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"practice-coach/work-flows/coach"
	"practice-coach/work-flows/models"
)

// Controller is the part of coach.Controller the form drives.
type Controller interface {
	Init(ctx context.Context, pageURL string) coach.Result
	Generate(ctx context.Context) coach.Result
	Clear()
}

type Options struct {
	PageURL     string
	Placeholder string
	SubmitLabel string
}

const (
	notesHeight    = 6
	minOutputLines = 5
)

type Model struct {
	ctx   context.Context
	ctrl  Controller
	view  *ProgramView
	opts  Options
	notes textarea.Model

	output  viewport.Model
	spinner spinner.Model

	content        string
	state          models.OutputState
	submitLabel    string
	submitDisabled bool
	inputHidden    bool
	lastOutcome    coach.Outcome

	width    int
	height   int
	quitting bool
}

func NewModel(ctx context.Context, ctrl Controller, view *ProgramView, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste your lesson notes here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(notesHeight)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorLoading)

	if opts.SubmitLabel == "" {
		opts.SubmitLabel = models.DefaultLabels().Generate
	}
	if opts.Placeholder == "" {
		opts.Placeholder = models.DefaultMessages().Placeholder
	}

	vp := viewport.New(80, minOutputLines)
	vp.SetContent(opts.Placeholder)

	return Model{
		ctx:         ctx,
		ctrl:        ctrl,
		view:        view,
		opts:        opts,
		notes:       ta,
		output:      vp,
		spinner:     s,
		content:     opts.Placeholder,
		state:       models.OutputStateEmpty,
		submitLabel: opts.SubmitLabel,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.spinner.Tick}
	if m.opts.PageURL != "" {
		cmds = append(cmds, m.initCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) initCmd() tea.Cmd {
	ctrl, ctx, pageURL := m.ctrl, m.ctx, m.opts.PageURL
	return func() tea.Msg {
		return GenerateDoneMsg{Result: ctrl.Init(ctx, pageURL)}
	}
}

func (m Model) generateCmd() tea.Cmd {
	ctrl, ctx := m.ctrl, m.ctx
	return func() tea.Msg {
		return GenerateDoneMsg{Result: ctrl.Generate(ctx)}
	}
}

// clearCmd runs Clear off the update loop since the controller reports back
// through Program.Send.
func (m Model) clearCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Clear()
		return nil
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.handleKey(msg); handled {
			return m, cmd
		}

	case OutputMsg:
		m.content = msg.Content
		m.state = msg.State
		m.output.SetContent(msg.Content)
		m.output.GotoTop()
		return m, nil

	case SubmitMsg:
		m.submitLabel = msg.Label
		m.submitDisabled = msg.Disabled
		return m, nil

	case SetNotesMsg:
		m.notes.SetValue(msg.Text)
		m.syncNotes()
		return m, nil

	case FocusNotesMsg:
		if m.inputHidden {
			return m, nil
		}
		return m, m.notes.Focus()

	case HideInputMsg:
		m.inputHidden = true
		m.notes.Blur()
		m.layout()
		return m, nil

	case GenerateDoneMsg:
		if msg.Result.Outcome != coach.OutcomeStale {
			m.lastOutcome = msg.Result.Outcome
		}
		return m, nil

	case QuitMsg:
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if !m.inputHidden {
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		cmds = append(cmds, cmd)
		m.syncNotes()
	}

	// Keys belong to the notes field while it is visible.
	if _, isKey := msg.(tea.KeyMsg); !isKey || m.inputHidden {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return true, tea.Quit

	case "ctrl+g", "ctrl+s":
		if m.submitDisabled {
			return true, nil
		}
		m.syncNotes()
		return true, m.generateCmd()

	case "ctrl+l":
		return true, m.clearCmd()

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return true, cmd
	}
	return false, nil
}

func (m *Model) syncNotes() {
	if m.view != nil {
		m.view.syncNotes(m.notes.Value())
	}
}

func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	inner := m.width - 4
	if inner < 20 {
		inner = 20
	}
	m.notes.SetWidth(inner)
	m.output.Width = inner

	// title, state tag, hints and the output box borders
	used := 1 + 1 + 1 + 2
	if !m.inputHidden {
		used += notesHeight + 2 + 1
	}
	h := m.height - used
	if h < minOutputLines {
		h = minOutputLines
	}
	m.output.Height = h
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	parts := []string{titleStyle.Render("🎵 Practice Coach")}

	if !m.inputHidden {
		parts = append(parts, inputBoxStyle.Render(m.notes.View()))
		parts = append(parts, m.buttonLine())
	}

	header := stateTagStyle.Render(m.state.Class())
	if m.state == models.OutputStateLoading {
		header = m.spinner.View() + " " + header
	}
	parts = append(parts, header)
	parts = append(parts, outputBorder(m.state).Render(m.output.View()))

	parts = append(parts, hintStyle.Render(m.hints()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) buttonLine() string {
	label := "[ " + m.submitLabel + " ]"
	if m.submitDisabled {
		return buttonDisabledStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func (m Model) hints() string {
	hints := []string{"ctrl+g generate"}
	if !m.inputHidden {
		hints = append(hints, "ctrl+l clear")
	}
	hints = append(hints, "pgup/pgdown scroll", "esc quit")
	if m.lastOutcome != coach.OutcomeIdle {
		hints = append(hints, "last: "+m.lastOutcome.String())
	}
	return strings.Join(hints, " · ")
}

// State returns the output classifier currently shown.
func (m Model) State() models.OutputState {
	return m.state
}

// Content returns the rendered output currently shown.
func (m Model) Content() string {
	return m.content
}
