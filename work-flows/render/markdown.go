// Package render turns practice-plan markdown into displayable text.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

const DefaultWordWrap = 80

type Renderer interface {
	Render(markdown string) (string, error)
}

// Plain returns its input unchanged.
type Plain struct{}

func (Plain) Render(markdown string) (string, error) {
	return markdown, nil
}

// HTMLRenderer renders markdown to HTML. Raw HTML in the input is escaped.
type HTMLRenderer struct {
	md goldmark.Markdown
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				goldmarkHTML.WithHardWraps(),
			),
		),
	}
}

func (r *HTMLRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

var (
	termRendererMu sync.Mutex
	termRenderers  = map[int]*glamour.TermRenderer{}
)

// TerminalRenderer renders markdown to ANSI text for a given wrap width.
type TerminalRenderer struct {
	width int
}

func NewTerminalRenderer(width int) *TerminalRenderer {
	if width <= 0 {
		width = DefaultWordWrap
	}
	return &TerminalRenderer{width: width}
}

func (r *TerminalRenderer) Width() int {
	return r.width
}

func (r *TerminalRenderer) Render(markdown string) (string, error) {
	termRendererMu.Lock()
	defer termRendererMu.Unlock()

	tr, err := termRendererFor(r.width)
	if err != nil {
		return "", err
	}
	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// termRendererFor must be called with termRendererMu held.
func termRendererFor(width int) (*glamour.TermRenderer, error) {
	if tr, ok := termRenderers[width]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	termRenderers[width] = tr
	return tr, nil
}
