package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/modgraph/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner draws a one-line progress indicator on a terminal writer until it
// is stopped or its context is cancelled. The message can change while it
// spins.
type Spinner struct {
	out    io.Writer
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	message string
	drawn   int // visible width of the last frame written

	startOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}
}

// newSpinner creates a spinner writing to out. A nil out disables drawing
// but keeps the rest of the API usable.
func newSpinner(ctx context.Context, out io.Writer, message string) *Spinner {
	if out == nil {
		out = io.Discard
	}
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		out:     out,
		parent:  ctx,
		ctx:     spinnerCtx,
		cancel:  cancel,
		message: message,
		stopped: make(chan struct{}),
	}
}

// Start begins the animation. Calling it more than once has no effect.
func (s *Spinner) Start() {
	s.startOnce.Do(func() {
		go s.run()
	})
}

func (s *Spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.Clear()
			return
		case <-ticker.C:
			s.draw(spinnerFrames[i%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.message)
	fmt.Fprintf(s.out, "\r%s", line)
	s.drawn = len(s.message) + 2
}

// SetMessage replaces the text shown next to the spinner from the next
// frame on.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Message returns the current text.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Clear erases the current frame so other output can use the line. The
// spinner redraws on its next tick.
func (s *Spinner) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn == 0 {
		return
	}
	fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.drawn+2))
	s.drawn = 0
}

// Stop ends the animation and clears the line. It is safe to call more
// than once and before Start.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		s.startOnce.Do(func() { close(s.stopped) })
		<-s.stopped
		s.Clear()
	})
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context the spinner was created with has
// ended, as opposed to the spinner being stopped.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

// =============================================================================
// Scan progress
// =============================================================================

// scanProgress drives a spinner from the pipeline's scan events and
// forwards every event to logHooks as well.
type scanProgress struct {
	logHooks
	spinner *Spinner

	archives int
	broken   int
}

var _ observability.PipelineHooks = (*scanProgress)(nil)

func newScanProgress(h logHooks, s *Spinner) *scanProgress {
	return &scanProgress{logHooks: h, spinner: s}
}

func (p *scanProgress) OnScanStart(ctx context.Context, dir string) {
	p.logHooks.OnScanStart(ctx, dir)
	p.archives, p.broken = 0, 0
	p.spinner.SetMessage("Scanning " + dir + "...")
	p.spinner.Start()
}

func (p *scanProgress) OnArchiveLoaded(ctx context.Context, path string, mods int, d time.Duration, err error) {
	p.archives++
	if err != nil {
		p.broken++
		// Scan logs a warning for the archive right after this event.
		p.spinner.Clear()
	}
	p.logHooks.OnArchiveLoaded(ctx, path, mods, d, err)
	p.spinner.SetMessage(p.status(filepath.Base(path)))
}

func (p *scanProgress) OnScanComplete(ctx context.Context, dir string, records, failed int, d time.Duration) {
	p.spinner.Stop()
	p.logHooks.OnScanComplete(ctx, dir, records, failed, d)
}

func (p *scanProgress) status(last string) string {
	s := fmt.Sprintf("Scanned %d archives", p.archives)
	if p.broken > 0 {
		s += fmt.Sprintf(" (%d broken)", p.broken)
	}
	return s + " · " + last
}
