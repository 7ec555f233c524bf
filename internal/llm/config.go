package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskCategorize  TaskType = "categorize"
	TaskSummarize   TaskType = "summarize"
	TaskTeamSummary TaskType = "team_summary"
	TaskRecognize   TaskType = "recognize"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The LLM is
// disabled by default; every consumer has a deterministic fallback.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskCategorize:  {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 15000},
			TaskSummarize:   {Temperature: 0.3, MaxTokens: 1024, TimeoutMs: 20000},
			TaskTeamSummary: {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 45000},
			TaskRecognize:   {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads LLM configuration from PULSE_LLM_* environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PULSE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PULSE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("PULSE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PULSE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PULSE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PULSE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout in milliseconds for a task,
// preferring the per-task override.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
