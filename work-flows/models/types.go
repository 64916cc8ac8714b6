package models

import (
	"encoding/json"
	"fmt"
)

// Output states

type OutputState string

const (
	OutputStateEmpty   OutputState = "empty"
	OutputStateLoading OutputState = "loading"
	OutputStateReady   OutputState = "ready"
)

func (s OutputState) String() string {
	return string(s)
}

// Class returns the style classifier attached to the output region.
func (s OutputState) Class() string {
	return "output is-" + string(s)
}

func IsValidOutputState(state string) bool {
	switch OutputState(state) {
	case OutputStateEmpty, OutputStateLoading, OutputStateReady:
		return true
	default:
		return false
	}
}

type RequestKind int

const (
	RequestKindNotes RequestKind = iota + 1
	RequestKindLesson
)

func (k RequestKind) String() string {
	switch k {
	case RequestKindNotes:
		return "teacher_notes"
	case RequestKindLesson:
		return "lesson_id"
	default:
		return "unknown"
	}
}

// PracticeRequest is either Notes(text) or Lesson(id). Use NotesRequest or
// LessonRequest to build one; the zero value does not encode.
type PracticeRequest struct {
	Kind     RequestKind
	Notes    string
	LessonID string
}

func NotesRequest(notes string) PracticeRequest {
	return PracticeRequest{Kind: RequestKindNotes, Notes: notes}
}

func LessonRequest(lessonID string) PracticeRequest {
	return PracticeRequest{Kind: RequestKindLesson, LessonID: lessonID}
}

// Value returns the notes or the lesson id, whichever the variant carries.
func (r PracticeRequest) Value() string {
	if r.Kind == RequestKindLesson {
		return r.LessonID
	}
	return r.Notes
}

func (r PracticeRequest) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case RequestKindNotes:
		return json.Marshal(struct {
			TeacherNotes string `json:"teacher_notes"`
		}{r.Notes})
	case RequestKindLesson:
		return json.Marshal(struct {
			LessonID string `json:"lesson_id"`
		}{r.LessonID})
	default:
		return nil, fmt.Errorf("practice request has no kind")
	}
}

// UnmarshalJSON accepts either key. When both are present lesson_id wins,
// which is how the endpoint resolves them.
func (r *PracticeRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		TeacherNotes *string `json:"teacher_notes"`
		LessonID     *string `json:"lesson_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.LessonID != nil && *raw.LessonID != "":
		*r = LessonRequest(*raw.LessonID)
	case raw.TeacherNotes != nil:
		*r = NotesRequest(*raw.TeacherNotes)
	default:
		*r = PracticeRequest{}
	}
	return nil
}

type PracticeResponse struct {
	PracticePlan string `json:"practice_plan,omitempty"`
}

// Messages holds every user-visible text the controller renders.
type Messages struct {
	Placeholder   string `yaml:"placeholder"`
	EmptyNotes    string `yaml:"empty_notes"`
	Loading       string `yaml:"loading"`
	NoPlan        string `yaml:"no_plan"`
	FailurePrefix string `yaml:"failure_prefix"`
}

type Labels struct {
	Generate   string `yaml:"generate"`
	Generating string `yaml:"generating"`
}

func DefaultMessages() Messages {
	return Messages{
		Placeholder:   "Your AI-generated practice plan will appear here.",
		EmptyNotes:    "Please paste your lesson notes 🙂",
		Loading:       "Preparing your practice plan…",
		NoPlan:        "No practice generated.",
		FailurePrefix: "Oops 😅",
	}
}

func DefaultLabels() Labels {
	return Labels{
		Generate:   "Generate practice",
		Generating: "Generating…",
	}
}

// WithDefaults fills blank fields from DefaultMessages.
func (m Messages) WithDefaults() Messages {
	d := DefaultMessages()
	if m.Placeholder == "" {
		m.Placeholder = d.Placeholder
	}
	if m.EmptyNotes == "" {
		m.EmptyNotes = d.EmptyNotes
	}
	if m.Loading == "" {
		m.Loading = d.Loading
	}
	if m.NoPlan == "" {
		m.NoPlan = d.NoPlan
	}
	if m.FailurePrefix == "" {
		m.FailurePrefix = d.FailurePrefix
	}
	return m
}

func (l Labels) WithDefaults() Labels {
	d := DefaultLabels()
	if l.Generate == "" {
		l.Generate = d.Generate
	}
	if l.Generating == "" {
		l.Generating = d.Generating
	}
	return l
}

// Mock lesson record served by the development endpoint.
type Lesson struct {
	LessonID      string `json:"lesson_id"`
	StudentID     string `json:"student_id"`
	Instrument    string `json:"instrument"`
	Transcription string `json:"transcription"`
}
