package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements [MazeHooks] and [HTTPHooks] by writing debug-level
// events, and errors at error level, to a charmbracelet logger.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnGenerateStart(_ context.Context, rows, columns int, seed uint64) {
	h.logger.Debug("generate start", "rows", rows, "columns", columns, "seed", seed)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, passages int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("generate failed", "error", err, "elapsed", d)
		return
	}
	h.logger.Debug("generate done", "passages", passages, "elapsed", d)
}

func (h *LogHooks) OnSearchStart(_ context.Context, mode string) {
	h.logger.Debug("search start", "mode", mode)
}

func (h *LogHooks) OnSearchComplete(_ context.Context, mode string, visited, pathLen int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("search failed", "mode", mode, "error", err, "elapsed", d)
		return
	}
	h.logger.Debug("search done", "mode", mode, "visited", visited, "path", pathLen, "elapsed", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "formats", formats, "error", err, "elapsed", d)
		return
	}
	h.logger.Debug("render done", "formats", formats, "elapsed", d)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "elapsed", d)
}

func (h *LogHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "error", err)
}
