package gateway

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"practice-coach/work-flows/models"
)

func TestConsoleViewPrintsStateAndOutput(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var out bytes.Buffer
	view := NewConsoleView(&out, "notes")

	view.SetOutput("Preparing…", models.OutputStateLoading)
	view.SetOutput("Do scales\n\n", models.OutputStateReady)

	assert.Equal(t, "[output is-loading]\nPreparing…\n[output is-ready]\nDo scales\n", out.String())

	output, state := view.Output()
	assert.Equal(t, "Do scales\n\n", output)
	assert.Equal(t, models.OutputStateReady, state)
}

func TestConsoleViewQuietSkipsLoading(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	var out bytes.Buffer
	view := NewConsoleView(&out, "")
	view.SetQuiet(true)

	view.SetOutput("Preparing…", models.OutputStateLoading)
	assert.Empty(t, out.String())

	_, state := view.Output()
	assert.Equal(t, models.OutputStateLoading, state)
}

func TestConsoleViewNotes(t *testing.T) {
	view := NewConsoleView(&bytes.Buffer{}, "first")
	assert.Equal(t, "first", view.Notes())
	view.SetNotes("")
	assert.Equal(t, "", view.Notes())
}
