package completionsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

const defaultTimeout = 30 * time.Second

type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	chatCompletionRequest struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
)

// openAIService talks to any OpenAI-compatible chat completions endpoint.
type openAIService struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  core.Logger
}

var _ core.CompletionService = (*openAIService)(nil)

func NewOpenAIService(conf *core.Config, logger core.Logger) *openAIService {
	timeout := conf.Completion.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &openAIService{
		apiKey:  conf.Completion.APIKey,
		baseURL: strings.TrimRight(conf.Completion.BaseURL, "/"),
		model:   conf.Completion.Model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (svc *openAIService) Enabled() bool {
	return svc.apiKey != ""
}

func (svc *openAIService) Complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: svc.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return "", errors.Wrap(err, "encoding completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/chat/completions", &buf)
	if err != nil {
		return "", errors.Wrap(err, "building completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+svc.apiKey)

	res, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling completion endpoint")
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<10))
		return "", errors.Errorf("completion endpoint: status %d: %s", res.StatusCode, body)
	}

	var cres chatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&cres); err != nil {
		return "", errors.Wrap(err, "decoding completion response")
	}
	if len(cres.Choices) == 0 {
		return "", errors.New("completion endpoint: no choices returned")
	}
	return strings.TrimSpace(cres.Choices[0].Message.Content), nil
}
