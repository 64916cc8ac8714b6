package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	api_coach "practice-coach/api-coach"
	"practice-coach/utils"
	"practice-coach/work-flows/client"
	"practice-coach/work-flows/coach"
	"practice-coach/work-flows/gateway"
	"practice-coach/work-flows/gateway/tui"
	"practice-coach/work-flows/render"
	"practice-coach/work-flows/services"
)

const tuiLogFile = "practice-coach.log"

type cliOptions struct {
	pageURL    string
	lessonID   string
	notes      string
	once       bool
	html       bool
	output     string
	mockAddr   string
	configPath string
	status     bool
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	os.Exit(run(parseFlags()))
}

func run(opts cliOptions) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.mockAddr != "" {
		return runMockServer(ctx, opts.mockAddr)
	}

	cfg, err := utils.LoadCoachConfig(utils.ResolveConfigPath(opts.configPath))
	if err != nil {
		red := color.New(color.FgRed, color.Bold)
		red.Printf("✗ %v\n", err)
		return 1
	}

	if opts.output != "" && opts.output != "json" {
		utils.PrintError(fmt.Sprintf("Unsupported output format %q (only json)", opts.output))
		return 2
	}

	if opts.status {
		gateway.PrintHeader(color.Output)
		api_coach.RunStatusCLI(ctx, cfg.Endpoint.BaseURL, os.Stdin)
		gateway.PrintGoodbye(color.Output)
		return 0
	}

	if opts.notes == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			utils.PrintError(fmt.Sprintf("Failed to read notes from stdin: %v", err))
			return 1
		}
		opts.notes = string(data)
	}

	if opts.once || opts.notes != "" || opts.html || opts.output != "" {
		return runConsole(ctx, cfg, opts)
	}
	return runForm(ctx, cfg, opts)
}

func parseFlags() cliOptions {
	var opts cliOptions
	flag.StringVar(&opts.pageURL, "url", "", "page URL; a lesson_id query parameter starts auto mode")
	flag.StringVar(&opts.lessonID, "lesson", "", "lesson id (shorthand for -url ?lesson_id=<id>)")
	flag.StringVar(&opts.notes, "notes", "", "lesson notes for a one-shot run (- reads stdin)")
	flag.BoolVar(&opts.once, "once", false, "generate once on the console instead of opening the form")
	flag.BoolVar(&opts.html, "html", false, "render the plan as HTML instead of terminal markdown")
	flag.StringVar(&opts.output, "o", "", "export the result (json)")
	flag.StringVar(&opts.mockAddr, "serve-mock", "", "run the mock practice endpoint on this address")
	flag.StringVar(&opts.configPath, "config", "", "path to the YAML config")
	flag.BoolVar(&opts.status, "status", false, "open the service status menu (health, lesson lookup)")
	flag.Parse()

	if opts.pageURL == "" && opts.lessonID != "" {
		opts.pageURL = "?" + coach.LessonIDParam + "=" + url.QueryEscape(opts.lessonID)
	}
	return opts
}

func newController(view coach.View, cfg utils.CoachConfig, renderer render.Renderer) (*coach.Controller, string) {
	practiceClient := client.NewPracticeClient(cfg.Endpoint.BaseURL, client.WithPath(cfg.Endpoint.Path))

	controllerOpts := []coach.Option{
		coach.WithMessages(cfg.Messages),
		coach.WithLabels(cfg.Labels),
	}
	if target := cfg.Translation.TargetLanguage; target != "" {
		translator := services.NewTranslator(cfg.Translation.SourceLanguage, target)
		controllerOpts = append(controllerOpts, coach.WithTransformer(translator))
		utils.PrintInfo(fmt.Sprintf("Plans will be translated to %s", target))
	}

	return coach.NewController(view, practiceClient, renderer, controllerOpts...), practiceClient.Endpoint()
}

func runConsole(ctx context.Context, cfg utils.CoachConfig, opts cliOptions) int {
	gateway.PrintHeader(color.Output)

	var renderer render.Renderer = render.NewTerminalRenderer(cfg.Render.WordWrap)
	if opts.html {
		renderer = render.NewHTMLRenderer()
	}

	view := gateway.NewConsoleView(color.Output, opts.notes)
	view.SetQuiet(opts.output != "")
	ctrl, endpoint := newController(view, cfg, renderer)

	result := ctrl.Init(ctx, opts.pageURL)
	if result.Outcome == coach.OutcomeIdle {
		result = ctrl.Generate(ctx)
	}

	if opts.output == "json" {
		exportResult(result, endpoint, view)
	}

	switch result.Outcome {
	case coach.OutcomeRendered:
		return 0
	case coach.OutcomeRejected:
		return 2
	default:
		return 1
	}
}

func exportResult(result coach.Result, endpoint string, view *gateway.ConsoleView) {
	output, state := view.Output()
	data := map[string]any{
		"outcome": result.Outcome.String(),
		"mode":    result.Mode.String(),
		"plan":    result.Plan,
		"output":  output,
	}
	if result.Request.Kind != 0 {
		data[result.Request.Kind.String()] = result.Request.Value()
	}
	if result.Err != nil {
		data["error"] = result.Err.Error()
	}

	path, err := utils.ExportToJSON(utils.DefaultExportDir, utils.ExportFileName("practice_plan"), data,
		result.Mode.String(), endpoint, string(state))
	if err != nil {
		utils.PrintError(fmt.Sprintf("Failed to export JSON: %v", err))
		return
	}
	utils.PrintSuccess(fmt.Sprintf("Exported to %s", path))
}

func runForm(ctx context.Context, cfg utils.CoachConfig, opts cliOptions) int {
	logFile, err := os.OpenFile(tuiLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		utils.SetLogOutput(io.Discard)
	} else {
		defer logFile.Close()
		utils.SetLogOutput(logFile)
	}
	defer utils.SetLogOutput(nil)

	view := tui.NewProgramView()
	ctrl, _ := newController(view, cfg, render.NewTerminalRenderer(cfg.Render.WordWrap))

	err = tui.Run(ctx, ctrl, view, tui.Options{
		PageURL:     opts.pageURL,
		Placeholder: cfg.Messages.Placeholder,
		SubmitLabel: cfg.Labels.Generate,
	})
	if err != nil {
		utils.SetLogOutput(nil)
		utils.PrintError(fmt.Sprintf("Practice coach form failed: %v", err))
		return 1
	}

	gateway.PrintGoodbye(color.Output)
	return 0
}

func runMockServer(ctx context.Context, addr string) int {
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	gateway.PrintMockServerInfo(color.Output, addr)

	if err := gateway.NewMockServer().ListenAndServe(ctx, addr); err != nil {
		utils.PrintError(fmt.Sprintf("Mock server stopped: %v", err))
		return 1
	}
	gateway.PrintGoodbye(color.Output)
	return 0
}
