package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/pkg/observability"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "Scanning mods...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Scanning mods...") {
		t.Errorf("output = %q, want the message drawn", out.String())
	}
	if !strings.HasSuffix(out.String(), "\r") {
		t.Error("Stop should clear the line")
	}
	if s.Cancelled() {
		t.Error("Stop is not a cancellation")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "first")
	s.Start()
	s.SetMessage("second")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if s.Message() != "second" {
		t.Errorf("Message() = %q, want second", s.Message())
	}
	if !strings.Contains(out.String(), "second") {
		t.Errorf("output = %q, want the new message drawn", out.String())
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 10*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			s := newSpinner(ctx, nil, "waiting")
			s.Start()
			time.Sleep(50 * time.Millisecond)
			if !s.Cancelled() {
				t.Error("spinner should report the ended context")
			}
			s.Stop()
		})
	}
}

func TestSpinnerStop(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		s := newSpinner(context.Background(), nil, "x")
		s.Start()
		s.Stop()
		s.Stop()
	})
	t.Run("before start", func(t *testing.T) {
		s := newSpinner(context.Background(), nil, "x")
		s.Stop()
		s.Start()
		s.Stop()
	})
}

func TestScanProgress(t *testing.T) {
	var logs bytes.Buffer
	var out syncBuffer
	s := newSpinner(context.Background(), &out, "")
	installHooks(newLogger(&logs, log.DebugLevel), s)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	hooks := observability.Pipeline()
	hooks.OnScanStart(ctx, "mods")
	hooks.OnArchiveLoaded(ctx, "mods/create.jar", 1, time.Millisecond, nil)
	hooks.OnArchiveLoaded(ctx, "mods/broken.jar", 0, time.Millisecond, errors.New("bad zip"))

	if got, want := s.Message(), "Scanned 2 archives (1 broken) · broken.jar"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	hooks.OnScanComplete(ctx, "mods", 1, 1, time.Millisecond)
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("scan completion should stop the spinner")
	}

	for _, want := range []string{"scan started", "archive loaded", "archive failed", "scan complete"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("debug log missing %q", want)
		}
	}
}
