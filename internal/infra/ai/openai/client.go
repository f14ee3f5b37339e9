package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/aryanpyx/finsight/internal/domain/ai"
	"github.com/aryanpyx/finsight/internal/domain/analysis"
	"github.com/aryanpyx/finsight/internal/infra/ai/prompt"
)

const maxTokens = 4096

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) AnalyzeContract(ctx context.Context, contractText, workLogs string) (*analysis.ContractAnalysis, error) {
	raw, err := c.completeJSON(ctx, prompt.ContractSystemPrompt(), prompt.ContractUserPrompt(contractText, workLogs))
	if err != nil {
		return nil, err
	}
	var out analysis.ContractAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode contract analysis: %w", err)
	}
	return &out, nil
}

func (c *Client) AnalyzeLicenses(ctx context.Context, licenseData string) (*analysis.LicenseAnalysis, error) {
	raw, err := c.completeJSON(ctx, prompt.LicenseSystemPrompt(), prompt.LicenseUserPrompt(licenseData))
	if err != nil {
		return nil, err
	}
	var out analysis.LicenseAnalysis
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode license analysis: %w", err)
	}
	return &out, nil
}

// GenerateProposal returns free text, no JSON response format here.
func (c *Client) GenerateProposal(ctx context.Context, req domai.ProposalRequest) (string, error) {
	r := c.newRequest(prompt.ProposalSystemPrompt(), prompt.ProposalUserPrompt(req))
	resp, err := c.CreateChatCompletion(ctx, r)
	if err != nil {
		return "", wrapAPIError(err)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) completeJSON(ctx context.Context, system, user string) (string, error) {
	req := c.newRequest(system, user)
	req.ResponseFormat = &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	}
	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapAPIError(err)
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) newRequest(system, user string) openai.ChatCompletionRequest {
	model := c.Model
	if model == "" {
		model = "gpt-5"
	}
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
	if strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3") || strings.HasPrefix(model, "o4") || strings.HasPrefix(model, "gpt-5") {
		req.MaxCompletionTokens = maxTokens
	} else {
		req.MaxTokens = maxTokens
	}
	return req
}

// wrapAPIError maps provider quota responses onto the domain sentinel.
func wrapAPIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("failed to create chat completion: %w", err)
}
