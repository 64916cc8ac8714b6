package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const DefaultExportDir = "exports"

type ExportData struct {
	Timestamp   string `json:"timestamp"`
	RequestType string `json:"request_type"`
	Endpoint    string `json:"endpoint"`
	State       string `json:"state"`
	Data        any    `json:"data"`
}

func sanitizeString(s string) string {
	if !utf8.ValidString(s) {
		return strings.ToValidUTF8(s, "?")
	}
	return s
}

func decodeUTF8(data any) any {
	switch v := data.(type) {
	case string:
		return sanitizeString(v)
	case map[string]any:
		result := make(map[string]any)
		for key, value := range v {
			result[sanitizeString(key)] = decodeUTF8(value)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, value := range v {
			result[i] = decodeUTF8(value)
		}
		return result
	default:
		return v
	}
}

// ExportFileName builds "<prefix>_<unix seconds>.json".
func ExportFileName(prefix string) string {
	return fmt.Sprintf("%s_%d.json", prefix, GetCurrentTimestamp())
}

// ExportToJSON writes an indented record to dir/filename and returns the path.
// HTML characters are not escaped so rendered plans stay readable.
func ExportToJSON(dir, filename string, data any, requestType, endpoint, state string) (string, error) {
	if dir == "" {
		dir = DefaultExportDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	path := filepath.Join(dir, filename)

	exportData := ExportData{
		Timestamp:   currentRFC3339(),
		RequestType: requestType,
		Endpoint:    endpoint,
		State:       state,
		Data:        decodeUTF8(data),
	}

	var buf strings.Builder
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(exportData); err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, []byte(strings.TrimSpace(buf.String())), 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return path, nil
}

// ParseExportFlag strips a trailing "--o json" from an interactive command
// and reports whether it was present.
func ParseExportFlag(input string) (string, bool) {
	parts := strings.Fields(input)
	for i, part := range parts {
		if part == "--o" && i+1 < len(parts) && parts[i+1] == "json" {
			cleaned := strings.Join(append(parts[:i], parts[i+2:]...), " ")
			return strings.TrimSpace(cleaned), true
		}
	}
	return input, false
}
