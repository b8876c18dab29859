package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vmilosevic/liftinsights/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEmptyCompletion = errors.New("completion service returned no text")

// Client talks to the external LLM completion API. It never does any
// numeric work itself; callers hand it fully pre-computed findings.
type Client struct {
	baseURL       string
	apiKey        string
	model         string
	fallbackModel string
	httpClient    *http.Client
}

func NewClient(baseURL, apiKey, model, fallbackModel string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		model:         model,
		fallbackModel: fallbackModel,
		httpClient:    httpClient,
	}
}

type completionRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// Complete sends the prompt once; if the primary model is transiently
// unavailable it retries once against the fallback model variant. Any
// other error surfaces untouched.
func (c *Client) Complete(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insightsClient.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("model", c.model))

	text, err := c.complete(ctx, c.model, prompt)
	if err == nil {
		return text, nil
	}

	if !isTransient(err) || c.fallbackModel == "" {
		return "", err
	}

	log.Warnf("completion with model [%s] transiently failed (%s), retrying with [%s]", c.model, err, c.fallbackModel)
	span.SetAttributes(attribute.String("fallback_model", c.fallbackModel))

	return c.complete(ctx, c.fallbackModel, prompt)
}

func (c *Client) complete(ctx context.Context, model, prompt string) (string, error) {
	reqJson, err := json.Marshal(completionRequest{
		Model:  model,
		Prompt: prompt,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/completions",
		bytes.NewReader(reqJson),
	)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &transientError{cause: fmt.Errorf("completion request: %w", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warnf("close completion response body: %s", err)
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", &transientError{
			cause: fmt.Errorf("completion service unavailable [status %d]: %s", resp.StatusCode, respBytes),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion failed [status %d]: %s", resp.StatusCode, respBytes)
	}

	var completion completionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		return "", fmt.Errorf("unmarshal completion response: %w", err)
	}

	if completion.Text == "" {
		return "", ErrEmptyCompletion
	}

	return completion.Text, nil
}

type transientError struct {
	cause error
}

func (e *transientError) Error() string {
	return e.cause.Error()
}

func (e *transientError) Unwrap() error {
	return e.cause
}

func isTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}
