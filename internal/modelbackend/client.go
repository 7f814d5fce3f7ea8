// Package modelbackend is the typed HTTP client for the external
// model-serving backend that generates MCQs, solves questions for a known
// chapter, and routes free-form questions to a chapter itself.
package modelbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client with a dedicated http.Client. Model inference can
// be slow, so the timeout is generous and fixed; callers get no retries.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SolutionSteps decodes the upstream "steps" field, which arrives either as a
// JSON array of strings or as one comma-delimited string. Both shapes decode
// to the same ordered list.
type SolutionSteps []string

func (s *SolutionSteps) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = asList
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("steps is neither a list nor a string: %w", err)
	}

	steps := make([]string, 0)
	for _, part := range strings.Split(asString, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			steps = append(steps, trimmed)
		}
	}
	*s = steps
	return nil
}

type MCQData struct {
	Question             string            `json:"question"`
	Options              map[string]string `json:"options"`
	CorrectOption        string            `json:"correct_option"`
	DistractorRationales map[string]string `json:"distractor_rationales"`
	AnswerExplanation    string            `json:"answer_explanation"`
}

type SolveData struct {
	Given       string        `json:"given"`
	ToFind      string        `json:"to_find"`
	Steps       SolutionSteps `json:"steps"`
	FinalAnswer string        `json:"final_answer"`
}

// SolveAutoResult is the full /api/solve_auto envelope. A backend-declared
// error arrives in Error with Data nil; both empty means the router failed
// silently. Transport and decode failures are returned as Go errors instead.
type SolveAutoResult struct {
	Error         string     `json:"error"`
	Data          *SolveData `json:"data"`
	RoutedChapter string     `json:"routed_chapter"`
	Adapter       string     `json:"adapter"`
}

func (c *Client) GenerateMCQ(ctx context.Context, chapter string, difficulty int) (*MCQData, error) {
	payload := map[string]interface{}{
		"chapter":    chapter,
		"difficulty": difficulty,
	}

	var result struct {
		Data *MCQData `json:"data"`
	}
	if err := c.post(ctx, "/api/mcq", payload, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, fmt.Errorf("mcq response has no data block")
	}
	return result.Data, nil
}

func (c *Client) Solve(ctx context.Context, chapter, question string) (*SolveData, error) {
	payload := map[string]string{
		"chapter":  chapter,
		"question": question,
	}

	var result struct {
		Data *SolveData `json:"data"`
	}
	if err := c.post(ctx, "/api/solve", payload, &result); err != nil {
		return nil, err
	}
	if result.Data == nil {
		return nil, fmt.Errorf("solve response has no data block")
	}
	return result.Data, nil
}

func (c *Client) SolveAuto(ctx context.Context, question string) (*SolveAutoResult, error) {
	payload := map[string]string{"question": question}

	var result SolveAutoResult
	if err := c.post(ctx, "/api/solve_auto", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("model backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode model backend response: %w", err)
	}
	return nil
}
