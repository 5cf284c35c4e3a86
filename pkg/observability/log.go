package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and artifact events to a logger at debug level.
// Failures are reported at error level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger. A nil logger discards events.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ ArtifactHooks = (*LogHooks)(nil)
)

func (h *LogHooks) OnImportStart(_ context.Context, source string) {
	h.debug("import started", "source", source)
}

func (h *LogHooks) OnImportComplete(_ context.Context, source string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.error("import failed", err, "source", source)
		return
	}
	h.debug("import complete", "source", source, "nodes", nodeCount, "took", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, vizType string, nodeCount int) {
	h.debug("layout started", "viz", vizType, "nodes", nodeCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, vizType string, rectCount int, d time.Duration, err error) {
	if err != nil {
		h.error("layout failed", err, "viz", vizType)
		return
	}
	h.debug("layout complete", "viz", vizType, "frames", rectCount, "took", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.error("render failed", err, "formats", formats)
		return
	}
	h.debug("render complete", "formats", formats, "took", d)
}

func (h *LogHooks) OnArtifactWritten(_ context.Context, path string, size int) {
	h.debug("artifact written", "path", path, "bytes", size)
}

func (h *LogHooks) OnArtifactError(_ context.Context, path string, err error) {
	h.error("artifact write failed", err, "path", path)
}

func (h *LogHooks) debug(msg string, kv ...any) {
	if h.logger != nil {
		h.logger.Debug(msg, kv...)
	}
}

func (h *LogHooks) error(msg string, err error, kv ...any) {
	if h.logger != nil {
		h.logger.Error(msg, append(kv, "err", err)...)
	}
}
