// Package llm provides the chat-completion client used to translate and
// explain terms in context.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/deepgloss/internal/entity"
	"github.com/eslsoft/deepgloss/internal/infrastructure/config"
)

const explainSystemPrompt = "You are a linguistic expert helper. " +
	"Please perform two tasks:\n" +
	"1. **Translate the entire context sentence** into natural, fluent Chinese.\n" +
	"2. Provide a concise explanation of the **target term's** specific meaning/usage within this context (in English).\n\n" +
	"Output strictly in JSON format with keys:\n" +
	"- 'translation': The full Chinese translation of the sentence.\n" +
	"- 'explanation': The explanation of the term."

// Client wraps an OpenAI-compatible chat completion endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds an LLM client from configuration.
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.LLM.BaseURL, "/"),
		apiKey:  cfg.LLM.APIKey,
		model:   cfg.LLM.Model,
		httpClient: &http.Client{
			Timeout: cfg.LLMTimeout(),
		},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ExplainTermInContext asks the model to translate the context sentence and
// explain the term's usage within it. A failed call or an unparseable reply
// never propagates as an error: the result's Explanation field carries the
// failure text instead.
func (c *Client) ExplainTermInContext(ctx context.Context, term, contextSentence string) entity.TermExplanation {
	userPrompt := fmt.Sprintf("Target Term: %s\nContext Sentence: %s", term, contextSentence)

	raw, err := c.complete(ctx, explainSystemPrompt, userPrompt, true)
	if err != nil {
		c.logger.WithError(err).Warn("explain call failed")
		return entity.TermExplanation{
			Translation: "Error parsing AI response.",
			Explanation: err.Error(),
		}
	}

	var result entity.TermExplanation
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.WithError(err).Warn("explain reply was not valid JSON")
		return entity.TermExplanation{
			Translation: "Error parsing AI response.",
			Explanation: err.Error(),
		}
	}
	return result
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, jsonMode bool) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.3,
	}
	if jsonMode {
		req.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	body, err := json.Marshal(&req)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return "", fmt.Errorf("chat request failed: status=%d", httpResp.StatusCode)
	}

	var resp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat response had no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
