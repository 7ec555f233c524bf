package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 1
	return cfg
}

func TestOllamaClient_Generate(t *testing.T) {
	var gotReq ollamaRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: `{"summary":"fine"}`})
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskSummarize,
		SystemPrompt: "system",
		UserPrompt:   "user",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"fine"}`, resp.Text)
	assert.Equal(t, "llama3.2", resp.Model)

	assert.False(t, gotReq.Stream)
	assert.Equal(t, "system", gotReq.System)
	assert.Equal(t, "user", gotReq.Prompt)
	assert.InDelta(t, 0.3, gotReq.Options.Temperature, 0.001, "summarize task defaults apply")
}

func TestOllamaClient_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "ok"})
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskCategorize, UserPrompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestOllamaClient_RetryExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewOllamaClient(testConfig(server.URL), observer)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskCategorize, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrRetryExhausted)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "UNKNOWN", events[0].ErrorCode)
}

func TestOllamaClient_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewOllamaClient(testConfig(server.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{Task: TaskSummarize, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOllamaClient_Available(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
	}))
	defer server.Close()

	client := NewOllamaClient(testConfig(server.URL), nil)
	assert.True(t, client.Available(context.Background()))

	server.Close()
	assert.False(t, client.Available(context.Background()))
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("PULSE_LLM_ENABLED", "true")
	t.Setenv("PULSE_LLM_ENDPOINT", "http://model-host:11434")
	t.Setenv("PULSE_LLM_MODEL", "qwen2.5")
	t.Setenv("PULSE_LLM_TIMEOUT_MS", "30000")
	t.Setenv("PULSE_LLM_MAX_RETRIES", "3")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://model-host:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
}

func TestLoadConfig_BadValuesIgnored(t *testing.T) {
	t.Setenv("PULSE_LLM_ENABLED", "banana")
	t.Setenv("PULSE_LLM_TIMEOUT_MS", "-5")
	t.Setenv("PULSE_LLM_MAX_RETRIES", "nope")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskTeamSummary))
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskType("unknown")), "unknown tasks use the global timeout")
}

func TestLogObserver(t *testing.T) {
	var sb strings.Builder
	obs := NewLogObserver(&sb)
	obs.OnCallComplete(CallEvent{Task: TaskCategorize, Model: "llama3.2", LatencyMs: 42, Success: true})
	obs.OnCallComplete(CallEvent{Task: TaskSummarize, Model: "llama3.2", Success: false, ErrorCode: "TIMEOUT"})

	out := sb.String()
	assert.Contains(t, out, "task=categorize")
	assert.Contains(t, out, "latency_ms=42")
	assert.Contains(t, out, "TIMEOUT")
}
