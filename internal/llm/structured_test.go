package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Message string `json:"message"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	out, err := ExtractJSON[greeting](`{"message":"hello"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Message)
}

func TestExtractJSON_CodeFence(t *testing.T) {
	text := "```json\n{\"message\":\"fenced\"}\n```"
	out, err := ExtractJSON[greeting](text, nil)
	require.NoError(t, err)
	assert.Equal(t, "fenced", out.Message)
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	text := `Sure! Here is the JSON you asked for:

{"message":"wrapped"}

Let me know if you need anything else.`
	out, err := ExtractJSON[greeting](text, nil)
	require.NoError(t, err)
	assert.Equal(t, "wrapped", out.Message)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	out, err := ExtractJSON[greeting](`{"message":"a { brace } inside"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "a { brace } inside", out.Message)
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	type wrapper struct {
		Inner greeting `json:"inner"`
	}
	out, err := ExtractJSON[wrapper](`{"inner":{"message":"deep"}}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "deep", out.Inner.Message)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[greeting]("I cannot answer that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := ExtractJSON[greeting](`{"message": dangling`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validate := func(g greeting) error {
		if g.Message == "" {
			return fmt.Errorf("empty message")
		}
		return nil
	}
	_, err := ExtractJSON[greeting](`{"message":""}`, validate)
	assert.ErrorIs(t, err, ErrInvalidOutput)

	out, err := ExtractJSON[greeting](`{"message":"ok"}`, validate)
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Message)
}
