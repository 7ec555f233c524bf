package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent describes a completed LLM call for observability purposes.
// Prompt and response text are never included.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives notifications about LLM calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one line per call to the given writer.
type LogObserver struct {
	W io.Writer
}

// NewLogObserver creates a LogObserver over w.
func NewLogObserver(w io.Writer) LogObserver {
	return LogObserver{W: w}
}

func (o LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "error"
		if event.ErrorCode != "" {
			status = "error:" + event.ErrorCode
		}
	}
	fmt.Fprintf(o.W, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
