package api_coach

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"practice-coach/utils"
)

// RunStatusCLI runs the interactive status menu until the user exits, input
// ends or ctx is cancelled.
func RunStatusCLI(ctx context.Context, endpointBaseURL string, in io.Reader) {
	Init(endpointBaseURL)

	reader := bufio.NewReader(in)

	for ctx.Err() == nil {
		PrintMenu()
		PrintPrompt()

		input, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(input) == "" {
			fmt.Fprintln(out)
			return
		}
		choice := strings.TrimSpace(input)

		cleanedInput, exportJSON := utils.ParseExportFlag(choice)

		switch cleanedInput {
		case "1":
			CheckHealth(ctx, exportJSON)
		case "2":
			fmt.Fprint(out, "Enter lesson ID (e.g., violin_demo): ")
			lessonID, _ := reader.ReadString('\n')
			GetLesson(ctx, lessonID, exportJSON)
		case "3":
			return
		default:
			red := color.New(color.FgRed, color.Bold)
			red.Fprintln(out, "✗ Invalid choice. Please select 1-3.")
		}

		fmt.Fprintln(out)
	}
}
