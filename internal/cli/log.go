package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/modgraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Scanned 212 mods (41ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards pipeline and cache events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.CacheHooks    = logHooks{}
)

// installHooks registers logHooks for l. Events only show with --verbose.
// With a non-nil progress spinner, scan events also drive the spinner.
func installHooks(l *log.Logger, progress *Spinner) {
	h := logHooks{logger: l}
	if progress != nil {
		observability.SetPipelineHooks(newScanProgress(h, progress))
	} else {
		observability.SetPipelineHooks(h)
	}
	observability.SetCacheHooks(h)
}

func (h logHooks) OnScanStart(_ context.Context, dir string) {
	h.logger.Debug("scan started", "dir", dir)
}

func (h logHooks) OnArchiveLoaded(_ context.Context, path string, mods int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("archive failed", "file", path, "duration", d)
		return
	}
	h.logger.Debug("archive loaded", "file", path, "mods", mods, "duration", d)
}

func (h logHooks) OnScanComplete(_ context.Context, dir string, records, failed int, d time.Duration) {
	h.logger.Debug("scan complete", "dir", dir, "records", records, "failed", failed, "duration", d)
}

func (h logHooks) OnReduceComplete(_ context.Context, mode string, before, after int, d time.Duration) {
	h.logger.Debug("reduction complete", "mode", mode, "edges_before", before, "edges_after", after, "duration", d)
}

func (h logHooks) OnExportComplete(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("export failed", "file", path, "err", err)
		return
	}
	h.logger.Debug("export complete", "file", path, "duration", d)
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}
