package gateway

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func PrintHeader(w io.Writer) {
	cyan := color.New(color.FgCyan, color.Bold)

	cyan.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(w, "║                      Practice Coach                          ║")
	cyan.Fprintln(w, "║           Lesson notes in, daily practice plan out           ║")
	cyan.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)
}

func PrintMockServerInfo(w io.Writer, addr string) {
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite)

	green.Fprintf(w, "🌐 Mock practice endpoint listening on %s\n", addr)
	white.Fprintln(w, "   POST /practice-coach          {\"teacher_notes\"} or {\"lesson_id\"}")
	white.Fprintln(w, "   GET  /api/lesson/{lesson_id}  violin_demo, piano_demo, demo")
	white.Fprintln(w, "   GET  /health")
	fmt.Fprintln(w)
}

func PrintGoodbye(w io.Writer) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintln(w, "Happy practicing! 🎵")
}
