package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// LLMClient is the contract the recipe pipeline needs from the model
// service: one blocking completion call, no retry, no streaming.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sampling parameters for recipe generation. Bounded output, moderate
// temperature for a creative but parseable response.
const (
	llmMaxTokens   = 1500
	llmTemperature = 0.7
)

// LLMService talks to a DeepSeek-compatible chat-completions API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance. The API key comes from
// DEEPSEEK_API_KEY or, for Docker secrets, from the file named by
// DEEPSEEK_API_KEY_FILE.
func NewLLMService() (*LLMService, error) {
	apiKey := os.Getenv("DEEPSEEK_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("DEEPSEEK_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("DEEPSEEK_API_KEY or DEEPSEEK_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("DEEPSEEK_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}

	llmModel := os.Getenv("DEEPSEEK_MODEL")
	if llmModel == "" {
		llmModel = "deepseek-chat"
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  llmModel,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the chat-completions API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// Complete sends a single prompt and returns the model's free-form text.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   llmMaxTokens,
		Temperature: llmTemperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// ErrNoJSON is returned when the model's response contains no brace-delimited
// substring at all.
var ErrNoJSON = errors.New("no JSON object in model response")

// ExtractJSON pulls the first top-level brace-delimited substring out of
// free-form model output: a greedy match from the first '{' to the last '}'.
// It only guarantees the boundaries, not that the substring parses.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// FlexInt decodes a JSON value that may arrive as a number or as a numeric
// string. Model output is untrusted; "30" and 30 both mean 30 minutes.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*n = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		// Unparseable strings like "about half an hour" become zero rather
		// than failing the whole recipe.
		*n = 0
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = FlexInt(int(parsed))
		}
		return nil
	}

	return fmt.Errorf("invalid numeric value: %s", string(data))
}
