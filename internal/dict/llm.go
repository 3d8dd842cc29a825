package dict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	DefaultLLMModel   = "gpt-5-mini"
	DefaultLLMBaseURL = "https://api.openai.com/v1"
)

// LLM layers an OpenAI-compatible chat model over a base oracle:
// membership still comes from the base dictionary, corrections come
// from the model.
type LLM struct {
	base    Oracle
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewLLM creates an LLM-assisted oracle. Unset model/baseURL fall back
// to their defaults.
func NewLLM(base Oracle, apiKey, model, baseURL string) *LLM {
	if model == "" {
		model = DefaultLLMModel
	}
	if baseURL == "" {
		baseURL = DefaultLLMBaseURL
	}
	return &LLM{
		base:    base,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (l *LLM) Unknown(ctx context.Context, words []string) (mapset.Set[string], error) {
	return l.base.Unknown(ctx, words)
}

func (l *LLM) Correction(ctx context.Context, word string) (string, error) {
	fixed, err := l.CorrectWords(ctx, []string{word})
	if err != nil {
		return "", err
	}
	return fixed[word], nil
}

// CorrectWords asks the model for corrections of all words in one
// call. Words the model is not confident about map to "".
func (l *LLM) CorrectWords(ctx context.Context, words []string) (map[string]string, error) {
	reqBody := chatRequest{
		Model: l.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: strings.Join(words, "\n")},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		l.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+l.apiKey)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dict: llm request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("dict: llm response: %w", err)
	}
	if cr.Error != nil {
		return nil, fmt.Errorf("dict: llm: %s", cr.Error.Message)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("dict: llm returned no choices")
	}

	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out struct {
		Corrections map[string]string `json:"corrections"`
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("dict: llm corrections: %w", err)
	}
	return out.Corrections, nil
}

// --- OpenAI wire types ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const systemPrompt = `You are an English spelling corrector. The user sends one misspelled word per line. Respond with a JSON object of the form {"corrections": {"misspelled": "corrected", ...}} containing every input word exactly once, lower-cased. Use "" as the value when you cannot suggest a confident correction. Do not add words, commentary, or markdown.`
