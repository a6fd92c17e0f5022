package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"alfredoptarigan/thesis-checker/internal/models"
)

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// SubmissionController drives one submission at a time from input to the
// rendered report or failure panel.
type SubmissionController struct {
	encoder  EncoderService
	builder  *RequestBuilder
	client   CheckerClient
	renderer ResultRenderer
	view     View

	inFlight atomic.Bool
	mu       sync.Mutex
	state    SubmissionState
	observer func(from, to SubmissionState)
}

func NewSubmissionController(
	encoder EncoderService,
	builder *RequestBuilder,
	client CheckerClient,
	renderer ResultRenderer,
	view View,
) *SubmissionController {
	return &SubmissionController{
		encoder:  encoder,
		builder:  builder,
		client:   client,
		renderer: renderer,
		view:     view,
		state:    StateIdle,
	}
}

// OnTransition registers a callback invoked on every state change.
func (c *SubmissionController) OnTransition(fn func(from, to SubmissionState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observer = fn
}

func (c *SubmissionController) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one submission cycle. Invalid input is alerted and returned
// without any network call. Every other failure is rendered through the
// error panel and also returned. The controller is idle again when Submit
// returns.
func (c *SubmissionController) Submit(ctx context.Context, input SubmissionInput) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrSubmissionInProgress
	}
	defer c.inFlight.Store(false)

	if err := c.builder.Validate(input); err != nil {
		c.view.Alert(PresentError(err))
		return err
	}

	c.transition(StateSubmitting)
	c.view.SetLoading(true)
	c.view.HideReport()

	envelope, err := c.exchange(ctx, input)
	c.view.SetLoading(false)

	if err == nil {
		err = c.showReport(envelope)
	}
	if err != nil {
		log.Printf("❌ Document check failed: %v\n", err)
		c.view.ShowResults(c.renderer.RenderError(PresentError(err)))
		c.transition(StateFailed)
	} else {
		c.transition(StateSucceeded)
	}

	c.transition(StateIdle)
	return err
}

// exchange encodes the document and talks to the checker. Panics are turned
// into errors so the loading indicator is always cleared by the caller.
func (c *SubmissionController) exchange(ctx context.Context, input SubmissionInput) (envelope *models.OutcomeEnvelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			envelope = nil
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	payload, err := c.encoder.Encode(ctx, input.File)
	if err != nil {
		return nil, err
	}

	req, err := c.builder.Build(input, payload)
	if err != nil {
		return nil, err
	}

	log.Printf("📄 Submitting %s for %s (%s)\n", input.File.Name(), req.StudentInfo.Name, req.StudentInfo.StudentID)

	envelope, err = c.client.CheckDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, &ServiceError{Message: envelope.Error.Text}
	}

	return envelope, nil
}

func (c *SubmissionController) showReport(envelope *models.OutcomeEnvelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to render report: %v", r)
		}
	}()

	report := ResolveReport(envelope.Result, envelope.CheckID.Text)
	content, err := c.renderer.RenderReport(report)
	if err != nil {
		return err
	}

	c.view.ShowResults(content)
	log.Printf("✅ Document check completed: score %s\n", report.ScoreText())
	return nil
}

func (c *SubmissionController) transition(to SubmissionState) {
	c.mu.Lock()
	from := c.state
	c.state = to
	observer := c.observer
	c.mu.Unlock()

	if observer != nil {
		observer(from, to)
	}
}
