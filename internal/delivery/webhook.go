package delivery

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type webhookPayload struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

// WebhookNotifier POSTs every alert as JSON to a fixed URL. Any non-2xx answer is a failed delivery.
type WebhookNotifier struct {
	client *resty.Client
	url    string
}

func (n *WebhookNotifier) Send(ctx context.Context, userID int64, text string) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(webhookPayload{UserID: userID, Text: text}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("webhook: unexpected status code %d", resp.StatusCode())
	}
	return nil
}

func NewWebhookNotifier(client *resty.Client, url string) *WebhookNotifier {
	return &WebhookNotifier{client: client, url: url}
}
