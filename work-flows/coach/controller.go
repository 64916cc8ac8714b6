// Package coach drives the practice coach form: it reads notes or a lesson
// id, asks the practice endpoint for a plan and renders the answer into a View.
package coach

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"practice-coach/utils"
	"practice-coach/work-flows/client"
	"practice-coach/work-flows/models"
	"practice-coach/work-flows/render"
)

// View is the page the controller drives. Every method except SetOutput may
// be a no-op on surfaces that lack the element. Implementations must be safe
// for concurrent use.
type View interface {
	Notes() string
	SetNotes(text string)
	FocusNotes()
	HideInput()
	SetOutput(rendered string, state models.OutputState)
	SetSubmit(label string, disabled bool)
}

// PlanTransformer rewrites a plan before it is rendered.
type PlanTransformer interface {
	Transform(ctx context.Context, plan string) (string, error)
}

type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeRejected
	OutcomeRendered
	OutcomeFailed
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeRendered:
		return "rendered"
	case OutcomeFailed:
		return "failed"
	case OutcomeStale:
		return "stale"
	default:
		return "idle"
	}
}

// Result describes one Generate invocation.
type Result struct {
	Seq     uint64
	Outcome Outcome
	Mode    Mode
	Request models.PracticeRequest
	Plan    string
	State   models.OutputState
	Err     error
}

type Controller struct {
	view        View
	client      client.Client
	renderer    render.Renderer
	transformer PlanTransformer
	messages    models.Messages
	labels      models.Labels

	seq    atomic.Uint64
	viewMu sync.Mutex

	mu       sync.RWMutex
	lessonID string
}

type Option func(*Controller)

func WithMessages(messages models.Messages) Option {
	return func(c *Controller) {
		c.messages = messages.WithDefaults()
	}
}

func WithLabels(labels models.Labels) Option {
	return func(c *Controller) {
		c.labels = labels.WithDefaults()
	}
}

func WithTransformer(t PlanTransformer) Option {
	return func(c *Controller) {
		c.transformer = t
	}
}

func NewController(view View, apiClient client.Client, renderer render.Renderer, opts ...Option) *Controller {
	if renderer == nil {
		renderer = render.Plain{}
	}
	c := &Controller{
		view:     view,
		client:   apiClient,
		renderer: renderer,
		messages: models.DefaultMessages(),
		labels:   models.DefaultLabels(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode reports auto once Init found a lesson id.
func (c *Controller) Mode() Mode {
	if c.LessonID() != "" {
		return ModeAuto
	}
	return ModeManual
}

func (c *Controller) LessonID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lessonID
}

// Init inspects the page URL. With a lesson_id it hides the manual input and
// generates immediately; otherwise it stays idle and returns OutcomeIdle.
func (c *Controller) Init(ctx context.Context, pageURL string) Result {
	lessonID := LessonIDFromURL(pageURL)
	if lessonID == "" {
		return Result{Outcome: OutcomeIdle, Mode: ModeManual}
	}

	c.mu.Lock()
	c.lessonID = lessonID
	c.mu.Unlock()

	utils.PrintInfo(fmt.Sprintf("Auto mode for lesson %q", lessonID))
	c.view.HideInput()
	return c.Generate(ctx)
}

// Clear empties the notes, resets the output and supersedes any request in
// flight.
func (c *Controller) Clear() {
	c.viewMu.Lock()
	defer c.viewMu.Unlock()

	c.seq.Add(1)
	c.view.SetNotes("")
	c.setOutput(c.messages.Placeholder, models.OutputStateEmpty)
	c.view.FocusNotes()
	c.setLoading(false)
}

// Generate runs one request/response/render cycle. It never returns an error
// to the caller; failures are rendered into the view and reported in Result.
// Only the most recently started invocation may touch the view once its
// response arrives.
func (c *Controller) Generate(ctx context.Context) Result {
	c.viewMu.Lock()
	seq := c.seq.Add(1)
	mode := c.Mode()
	res := Result{Seq: seq, Mode: mode}

	req, err := BuildRequest(mode, c.view.Notes(), c.LessonID())
	if err != nil {
		res.Outcome = OutcomeRejected
		res.State = models.OutputStateEmpty
		res.Err = err
		c.setOutput(c.messages.EmptyNotes, models.OutputStateEmpty)
		c.view.FocusNotes()
		c.setLoading(false)
		c.viewMu.Unlock()
		return res
	}
	res.Request = req

	c.setLoading(true)
	c.setOutput(c.messages.Loading, models.OutputStateLoading)
	c.viewMu.Unlock()

	utils.PrintInfo(fmt.Sprintf("Requesting practice plan (%s, %s)", mode, req.Kind))
	plan, err := c.fetchPlan(ctx, req)
	if err == nil && c.isLatest(seq) {
		plan = c.transform(ctx, plan)
	}

	c.viewMu.Lock()
	defer c.viewMu.Unlock()

	res.Plan = plan
	res.Err = err
	if !c.isLatest(seq) {
		utils.PrintInfo(fmt.Sprintf("Discarding stale practice response #%d", seq))
		res.Outcome = OutcomeStale
		return res
	}
	defer c.setLoading(false)

	if err != nil {
		utils.PrintError(fmt.Sprintf("Practice request failed: %s", err.Error()))
		res.Outcome = OutcomeFailed
		res.State = models.OutputStateEmpty
		c.setOutput(fmt.Sprintf("%s %s", c.messages.FailurePrefix, err.Error()), models.OutputStateEmpty)
		return res
	}

	res.Outcome = OutcomeRendered
	res.State = models.OutputStateReady
	c.setOutput(plan, models.OutputStateReady)
	utils.PrintSuccess("Practice plan ready")
	return res
}

func (c *Controller) fetchPlan(ctx context.Context, req models.PracticeRequest) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("no practice client configured")
	}
	resp, err := c.client.GeneratePractice(ctx, req)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.PracticePlan == "" {
		return c.messages.NoPlan, nil
	}
	return resp.PracticePlan, nil
}

func (c *Controller) transform(ctx context.Context, plan string) string {
	if c.transformer == nil || plan == c.messages.NoPlan {
		return plan
	}
	out, err := c.transformer.Transform(ctx, plan)
	if err != nil {
		utils.PrintWarning(fmt.Sprintf("Showing untranslated plan: %s", err.Error()))
		return plan
	}
	return out
}

func (c *Controller) isLatest(seq uint64) bool {
	return c.seq.Load() == seq
}

func (c *Controller) setLoading(loading bool) {
	if loading {
		c.view.SetSubmit(c.labels.Generating, true)
		return
	}
	c.view.SetSubmit(c.labels.Generate, false)
}

// setOutput renders text as markdown; the raw text is shown if rendering fails.
func (c *Controller) setOutput(text string, state models.OutputState) {
	rendered, err := c.renderer.Render(text)
	if err != nil {
		utils.PrintWarning(fmt.Sprintf("Rendering markdown failed: %s", err.Error()))
		rendered = text
	}
	c.view.SetOutput(rendered, state)
}
