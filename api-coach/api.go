package api_coach

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fatih/color"

	"practice-coach/utils"
	"practice-coach/work-flows/client"
	"practice-coach/work-flows/models"
)

var (
	baseURL    string
	httpClient *http.Client
	out        io.Writer = color.Output
)

func Init(endpointBaseURL string) {
	baseURL = strings.TrimRight(endpointBaseURL, "/")
	if baseURL == "" {
		baseURL = client.DefaultBaseURL
	}
	httpClient = &http.Client{Timeout: 30 * time.Second}
}

// getJSON issues a GET against the practice service and returns the raw body
// of a 2xx response.
func getJSON(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &client.HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// CheckHealth calls GET /health and prints the service banner.
func CheckHealth(ctx context.Context, exportJSON bool) (string, error) {
	utils.PrintInfo("Checking practice service status...")

	endpoint := baseURL + "/health"
	body, err := getJSON(ctx, "/health")
	if err != nil {
		utils.PrintError("Health check failed: " + err.Error())
		return "", err
	}

	var health struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		utils.PrintError("Failed to decode response: " + err.Error())
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	utils.PrintSuccess("Practice service is up")
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(out, health.Message)

	if exportJSON {
		export(health, "health", endpoint)
	}
	return health.Message, nil
}

// GetLesson calls GET /api/lesson/{id}. The service answers an unknown id
// with 200 and an "error" field, which is reported as an error here.
func GetLesson(ctx context.Context, lessonID string, exportJSON bool) (*models.Lesson, error) {
	lessonID = strings.TrimSpace(lessonID)
	if lessonID == "" {
		utils.PrintError("Lesson ID cannot be empty")
		return nil, fmt.Errorf("lesson id cannot be empty")
	}

	utils.PrintInfo("Fetching lesson " + lessonID + "...")

	path := "/api/lesson/" + url.PathEscape(lessonID)
	body, err := getJSON(ctx, path)
	if err != nil {
		utils.PrintError("Lesson lookup failed: " + err.Error())
		return nil, err
	}

	var payload struct {
		models.Lesson
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.PrintError("Failed to decode response: " + err.Error())
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Error != "" {
		utils.PrintWarning(payload.Error)
		return nil, fmt.Errorf("%s: %s", payload.Error, lessonID)
	}

	lesson := payload.Lesson
	utils.PrintSuccess("Lesson retrieved successfully")
	printLesson(lesson)

	if exportJSON {
		export(lesson, "lesson", baseURL+path)
	}
	return &lesson, nil
}

func printLesson(lesson models.Lesson) {
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite)

	cyan.Fprintf(out, "Lesson: %s\n", lesson.LessonID)
	white.Fprintf(out, "  Student:    %s\n", lesson.StudentID)
	white.Fprintf(out, "  Instrument: %s\n", lesson.Instrument)
	white.Fprintf(out, "  Transcription:\n    %s\n", strings.ReplaceAll(lesson.Transcription, "\n", "\n    "))
}

func export(data any, requestType, endpoint string) {
	path, err := utils.ExportToJSON(utils.DefaultExportDir, utils.ExportFileName(requestType), data, requestType, endpoint, "ok")
	if err != nil {
		utils.PrintError("Failed to export JSON: " + err.Error())
		return
	}
	utils.PrintSuccess("Exported to " + path)
}
