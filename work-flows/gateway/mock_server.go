package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"practice-coach/utils"
	"practice-coach/work-flows/models"
)

// Development stand-in for the practice endpoint. It serves canned lessons
// and builds plans from fixed templates; there is no AI behind it.

var mockLessons = map[string]string{
	"violin_demo": `
Worked on B major scale, focusing on intonation and relaxed left-hand fingers.
Reviewed string crossings and consistent bow speed.
Short section of the piece was practiced slowly for accuracy.
`,
	"piano_demo": `
Practiced G major scale hands separately, focusing on even rhythm.
Worked on two short pieces, paying attention to dynamics and articulation.
Reviewed posture and relaxed wrists.
`,
	"demo": `
Practiced major scales slowly, focusing on clean transitions and steady rhythm.
Worked on musical phrasing and relaxed technique.
`,
}

const mockStudentID = "student_001"

type MockServer struct {
	lessons map[string]string
	mux     *http.ServeMux
}

func NewMockServer() *MockServer {
	ms := &MockServer{
		lessons: mockLessons,
		mux:     http.NewServeMux(),
	}

	ms.mux.HandleFunc("/health", ms.handleHealth)
	ms.mux.HandleFunc("/api/lesson/{lesson_id}", ms.handleGetLesson)
	ms.mux.HandleFunc("/practice-coach", ms.handlePracticeCoach)

	return ms
}

func (ms *MockServer) Handler() http.Handler {
	return ms.mux
}

// ListenAndServe blocks until ctx is cancelled or the listener fails.
func (ms *MockServer) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           ms.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (ms *MockServer) lookupLesson(lessonID string) (models.Lesson, bool) {
	transcription, ok := ms.lessons[lessonID]
	if !ok {
		return models.Lesson{}, false
	}
	return models.Lesson{
		LessonID:      lessonID,
		StudentID:     mockStudentID,
		Instrument:    detectInstrument(lessonID),
		Transcription: transcription,
	}, true
}

func detectInstrument(lessonID string) string {
	switch {
	case strings.Contains(lessonID, "violin"):
		return "violin"
	case strings.Contains(lessonID, "piano"):
		return "piano"
	default:
		return "unknown"
	}
}

func (ms *MockServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Practice Coach is running 🎵"})
}

func (ms *MockServer) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lesson, ok := ms.lookupLesson(r.PathValue("lesson_id"))
	if !ok {
		writeJSON(w, http.StatusOK, map[string]string{"error": "Lesson not found"})
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}

func (ms *MockServer) handlePracticeCoach(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PracticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	notes := req.Notes
	instrument := "unknown"
	if req.Kind == models.RequestKindLesson {
		lesson, ok := ms.lookupLesson(req.LessonID)
		if !ok {
			writeJSON(w, http.StatusOK, models.PracticeResponse{
				PracticePlan: fmt.Sprintf("No lesson found for lesson_id: %s", req.LessonID),
			})
			return
		}
		notes = lesson.Transcription
		instrument = lesson.Instrument
	}

	if strings.TrimSpace(notes) == "" {
		writeJSON(w, http.StatusOK, models.PracticeResponse{PracticePlan: "No lesson data provided."})
		return
	}

	utils.PrintInfo(fmt.Sprintf("Mock plan requested (%s)", req.Kind))
	writeJSON(w, http.StatusOK, models.PracticeResponse{PracticePlan: BuildMockPlan(instrument, notes)})
}

// BuildMockPlan turns lesson notes into a fixed-shape markdown plan.
func BuildMockPlan(instrument, notes string) string {
	var sb strings.Builder

	sb.WriteString("## 🎵 Today's practice plan\n\n")
	if instrument != "" && instrument != "unknown" {
		fmt.Fprintf(&sb, "**Instrument:** %s\n\n", instrument)
	}

	sb.WriteString("### Warm-up (5 min)\n")
	sb.WriteString("- Relaxed posture, slow and even tone.\n\n")

	sb.WriteString("### Focus (15 min)\n")
	for i, point := range focusPoints(notes) {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, point)
	}
	sb.WriteString("\n")

	sb.WriteString("### Wrap-up (5 min)\n")
	sb.WriteString("- Play something you enjoy, just for fun. 🙂\n")

	return sb.String()
}

func focusPoints(notes string) []string {
	fields := strings.FieldsFunc(notes, func(r rune) bool {
		return r == '\n' || r == '.'
	})

	points := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		points = append(points, f)
	}
	return points
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		utils.PrintError(fmt.Sprintf("Failed to write response: %v", err))
	}
}
