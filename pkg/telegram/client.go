package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Gateway sends announcement messages to a channel
type Gateway interface {
	SendMessage(chatID, text string) (int64, error)
}

// BotGateway sends messages through the Telegram Bot API
type BotGateway struct {
	BaseURL    string
	BotToken   string
	httpClient *http.Client
}

// MockGateway logs messages instead of sending them, for local runs
type MockGateway struct {
	Sent []string
}

// NewBotGateway creates a new Telegram bot gateway
func NewBotGateway(botToken string) Gateway {
	return &BotGateway{
		BaseURL:  "https://api.telegram.org",
		BotToken: botToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewMockGateway creates a new Mock gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// SendMessage posts a message to a chat and returns the message ID
func (g *BotGateway) SendMessage(chatID, text string) (int64, error) {
	requestBody := map[string]interface{}{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", g.BaseURL, g.BotToken)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		OK     bool `json:"ok"`
		Result struct {
			MessageID int64 `json:"message_id"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return 0, fmt.Errorf("failed to parse response: %w", err)
	}
	if !response.OK {
		return 0, fmt.Errorf("telegram rejected message: %s", string(body))
	}

	return response.Result.MessageID, nil
}

// SendMessage records the message and returns a fake ID
func (g *MockGateway) SendMessage(chatID, text string) (int64, error) {
	g.Sent = append(g.Sent, text)
	fmt.Printf("[Telegram Mock] To %s: %s\n", chatID, text)
	return time.Now().UnixNano(), nil
}
