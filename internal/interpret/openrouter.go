package interpret

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/mohdjaved291/File-Commander/internal/logging"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// systemPrompt fixes the interpreter contract: eight operation kinds,
// their parameter names, and the JSON plan shapes.
const systemPrompt = `You are a file system command interpreter. Parse the natural language command below into a structured format.

Based on the command, identify the operation(s) and parameters. The possible operations are:
1. create_folder - Parameters: folder_name, location (optional)
2. create_file - Parameters: file_name, location (optional), content (optional)
3. rename_item - Parameters: old_name, new_name, location (optional)
4. move_item - Parameters: source, destination
5. move_all_files - Parameters: source_dir, destination_dir
6. open_file_explorer - Parameters: location (optional)
7. search_files - Parameters: search_term, search_path (optional)
8. play_movie - Parameters: movie_name

The command may contain multiple operations that need to be performed in sequence.
If it's a single operation, output a JSON object with the operation and parameters:
{"operation": "create_folder", "parameters": {"folder_name": "reports", "location": "Desktop"}}

If the command contains multiple sequential operations, output a JSON object with an "operations" array:
{"has_multiple_operations": true, "operations": [{"operation": "create_folder", "parameters": {"folder_name": "movies", "location": "Desktop"}}]}

If the command is unclear, return:
{"operation": "unknown", "parameters": {}}

Always return only the JSON without any markdown formatting or code blocks.`

// Client is an OpenRouter chat-completions interpreter.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	model   string
	log     *logging.Logger
}

// ClientConfig configures the OpenRouter client.
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
	RPS     float64
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewClient creates an interpreter client backed by a retrying HTTP
// transport and a request rate limiter.
func NewClient(cfg ClientConfig, log *logging.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not set")
	}
	if log == nil {
		log = logging.NewDefault()
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 15 * time.Second
	retryClient.Logger = nil

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "File-Commander/1.0").
		SetTransport(&retryablehttp.RoundTripper{Client: retryClient})

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	return &Client{
		http:    httpClient,
		limiter: limiter,
		model:   cfg.Model,
		log:     log,
	}, nil
}

// Interpret sends the command to the model and decodes the returned
// plan. Any failure surfaces as an error; the caller decides how to
// present it.
func (c *Client) Interpret(ctx context.Context, command string) (types.Plan, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return types.Plan{}, fmt.Errorf("rate limit: %w", err)
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Command: " + command},
		},
		Temperature: 0,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return types.Plan{}, fmt.Errorf("interpreter request: %w", err)
	}

	var parsed chatResponse
	if err := sonic.Unmarshal(resp.Body(), &parsed); err != nil {
		return types.Plan{}, fmt.Errorf("interpreter response: %w", err)
	}
	if parsed.Error != nil {
		return types.Plan{}, fmt.Errorf("interpreter service: %s", parsed.Error.Message)
	}
	if resp.IsError() {
		return types.Plan{}, fmt.Errorf("interpreter service: %s", resp.Status())
	}
	if len(parsed.Choices) == 0 {
		return types.Plan{}, fmt.Errorf("interpreter returned no choices")
	}

	content := parsed.Choices[0].Message.Content
	c.log.Debug("interpreter reply", zap.String("content", content))

	return DecodePlan(content)
}
