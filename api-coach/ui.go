package api_coach

import (
	"fmt"

	"github.com/fatih/color"
)

func PrintMenu() {
	green := color.New(color.FgGreen, color.Bold)
	white := color.New(color.FgWhite)

	green.Fprintln(out, "┌─ Available Commands ────────────────────────────────────────┐")
	white.Fprintln(out, "│ 1. Check Practice Service Status                            │")
	white.Fprintln(out, "│ 2. Look Up A Lesson                                         │")
	white.Fprintln(out, "│ 3. Exit                                                     │")
	green.Fprintln(out, "└─────────────────────────────────────────────────────────────┘")
	fmt.Fprintln(out)
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(out, "💡 Tip: Add '--o json' to any command to export response to JSON file")
	fmt.Fprintln(out)
}

func PrintPrompt() {
	blue := color.New(color.FgBlue, color.Bold)
	blue.Fprint(out, "PracticeCoach> ")
}
