package coach

import (
	"errors"
	"net/url"
	"strings"

	"practice-coach/work-flows/models"
)

const LessonIDParam = "lesson_id"

var (
	ErrEmptyNotes      = errors.New("lesson notes are empty")
	ErrMissingLessonID = errors.New("lesson id is missing")
)

type Mode int

const (
	ModeManual Mode = iota
	ModeAuto
)

func (m Mode) String() string {
	if m == ModeAuto {
		return "auto"
	}
	return "manual"
}

// BuildRequest turns the controller's inputs into a request without touching
// the view or the network.
func BuildRequest(mode Mode, notes, lessonID string) (models.PracticeRequest, error) {
	if mode == ModeAuto {
		if lessonID == "" {
			return models.PracticeRequest{}, ErrMissingLessonID
		}
		return models.LessonRequest(lessonID), nil
	}

	notes = strings.TrimSpace(notes)
	if notes == "" {
		return models.PracticeRequest{}, ErrEmptyNotes
	}
	return models.NotesRequest(notes), nil
}

// LessonIDFromURL returns the lesson_id query parameter of a page URL, or ""
// when it is absent or the URL does not parse. A bare query string
// ("?lesson_id=42" or "lesson_id=42") is accepted too.
func LessonIDFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "?") && !strings.Contains(raw, "://") && strings.Contains(raw, "=") {
		raw = "?" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Query().Get(LessonIDParam)
}
