// Package summary meminta ringkasan naratif laporan presensi ke endpoint
// chat completions yang kompatibel OpenAI.
package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hadirku_backend/internals/configs"
)

var ErrNotConfigured = errors.New("layanan ringkasan belum dikonfigurasi (LLM_API_URL/LLM_API_KEY)")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type Client struct {
	httpClient *resty.Client
	model      string
	logger     *zap.Logger
}

// NewClient: baseURL seperti "https://api.openai.com/v1".
func NewClient(baseURL, apiKey, model string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(60*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1*time.Second).
		SetRetryMaxWaitTime(5*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		}).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{httpClient: hc, model: model, logger: logger}
}

// NewClientFromEnv: nil kalau LLM_API_URL atau LLM_API_KEY kosong.
func NewClientFromEnv(logger *zap.Logger) *Client {
	url := strings.TrimSpace(configs.GetEnv("LLM_API_URL"))
	key := strings.TrimSpace(configs.GetEnv("LLM_API_KEY"))
	if url == "" || key == "" {
		return nil
	}
	return NewClient(url, key, configs.GetEnv("LLM_MODEL"), logger)
}

func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}
	var out chatResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(chatRequest{Model: c.model, Messages: messages, Temperature: 0.3}).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		c.logger.Error("summary request failed", zap.Error(err))
		return "", fmt.Errorf("gagal menghubungi layanan ringkasan: %w", err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		c.logger.Error("summary api error", zap.Int("status", resp.StatusCode()), zap.String("msg", msg))
		return "", fmt.Errorf("layanan ringkasan error: %s", msg)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", errors.New("layanan ringkasan tidak mengembalikan teks")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
