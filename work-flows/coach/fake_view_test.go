package coach

import (
	"context"
	"sync"

	"practice-coach/work-flows/models"
)

// memView is an in-memory View.
type memView struct {
	mu sync.Mutex

	notes       string
	output      string
	state       models.OutputState
	label       string
	disabled    bool
	inputHidden bool
	focusCount  int
	outputs     int
}

func newMemView(notes string) *memView {
	return &memView{notes: notes, state: models.OutputStateEmpty, label: "Generate practice"}
}

func (v *memView) Notes() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notes
}

func (v *memView) SetNotes(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notes = text
}

func (v *memView) FocusNotes() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focusCount++
}

func (v *memView) HideInput() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.inputHidden = true
}

func (v *memView) SetOutput(rendered string, state models.OutputState) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.output = rendered
	v.state = state
	v.outputs++
}

func (v *memView) SetSubmit(label string, disabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.label = label
	v.disabled = disabled
}

type viewSnapshot struct {
	Notes       string
	Output      string
	State       models.OutputState
	Label       string
	Disabled    bool
	InputHidden bool
}

func (v *memView) snapshot() viewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return viewSnapshot{
		Notes:       v.notes,
		Output:      v.output,
		State:       v.state,
		Label:       v.label,
		Disabled:    v.disabled,
		InputHidden: v.inputHidden,
	}
}

// stubClient answers every request with resp/err, optionally waiting on gate
// first. Requests are recorded in order.
type stubClient struct {
	mu       sync.Mutex
	requests []models.PracticeRequest

	resp    *models.PracticeResponse
	err     error
	gate    chan struct{}
	started chan struct{}
}

func (s *stubClient) GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.PracticeResponse, error) {
	s.mu.Lock()
	s.requests = append(s.requests, req)
	gate, started := s.gate, s.started
	resp, err := s.resp, s.err
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return resp, err
}

func (s *stubClient) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type funcClient func(ctx context.Context, req models.PracticeRequest) (*models.PracticeResponse, error)

func (f funcClient) GeneratePractice(ctx context.Context, req models.PracticeRequest) (*models.PracticeResponse, error) {
	return f(ctx, req)
}
