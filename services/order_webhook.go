package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/0x00whitecode/hng-audiophile/models"
)

// WebhookPersister POSTs the full order record as JSON to an external
// endpoint. No response body is relied upon beyond the status code.
type WebhookPersister struct {
	url    string
	client *http.Client
}

func NewWebhookPersister(url string) *WebhookPersister {
	return &WebhookPersister{
		url:    url,
		client: &http.Client{},
	}
}

func (p *WebhookPersister) PersistOrder(ctx context.Context, order *models.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("order webhook returned status %d", resp.StatusCode)
	}
	return nil
}
