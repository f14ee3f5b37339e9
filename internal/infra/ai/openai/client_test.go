package openai

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"

	domai "github.com/aryanpyx/finsight/internal/domain/ai"
)

func TestNewRequestTokenField(t *testing.T) {
	cases := []struct {
		model     string
		reasoning bool
	}{
		{"gpt-4o", false},
		{"gpt-4o-mini", false},
		{"o1", true},
		{"o3-mini", true},
		{"o4-mini", true},
		{"gpt-5", true},
		{"gpt-5-mini", true},
		{"", true}, // defaults to gpt-5
	}
	for _, tc := range cases {
		c := &Client{Model: tc.model}
		req := c.newRequest("system", "user")
		if tc.reasoning {
			assert.Equalf(t, maxTokens, req.MaxCompletionTokens, "model=%q", tc.model)
			assert.Zerof(t, req.MaxTokens, "model=%q", tc.model)
		} else {
			assert.Equalf(t, maxTokens, req.MaxTokens, "model=%q", tc.model)
			assert.Zerof(t, req.MaxCompletionTokens, "model=%q", tc.model)
		}
	}
}

func TestNewRequestMessages(t *testing.T) {
	c := &Client{Model: "gpt-4o"}
	req := c.newRequest("be terse", "analyze this")

	assert.Equal(t, "gpt-4o", req.Model)
	assert.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, "be terse", req.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
	assert.Equal(t, "analyze this", req.Messages[1].Content)
}

func TestWrapAPIError(t *testing.T) {
	quota := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "rate limited"}
	assert.ErrorIs(t, wrapAPIError(quota), domai.ErrQuotaExceeded)

	server := &openai.APIError{HTTPStatusCode: http.StatusInternalServerError, Message: "boom"}
	assert.NotErrorIs(t, wrapAPIError(server), domai.ErrQuotaExceeded)

	plain := errors.New("connection refused")
	assert.NotErrorIs(t, wrapAPIError(plain), domai.ErrQuotaExceeded)
	assert.ErrorIs(t, wrapAPIError(plain), plain)
}
