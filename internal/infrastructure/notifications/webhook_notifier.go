package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/web-source-dev/Vos-backend-sub000/internal/domain/entities"
	"github.com/web-source-dev/Vos-backend-sub000/internal/usecase/interfaces"
)

// WebhookNotifier delivers workflow notifications to the notification relay
// (email/SMS fan-out happens there). In mock mode deliveries are logged and
// dropped, which keeps local development free of a relay dependency.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
	mockMode bool
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier() *WebhookNotifier {
	if isNotifierMockEnabled() {
		log.Printf("[notify][webhook] mock mode enabled")
		return &WebhookNotifier{mockMode: true}
	}

	endpoint := os.Getenv("NOTIFY_WEBHOOK_URL")
	if endpoint == "" {
		log.Printf("[notify][webhook] missing NOTIFY_WEBHOOK_URL, falling back to mock mode")
		return &WebhookNotifier{mockMode: true}
	}

	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) Send(ctx context.Context, notification entities.Notification) error {
	if n != nil && n.mockMode {
		log.Printf("[notify][webhook] mock send kind=%s recipient=%s case_id=%s", notification.Kind, notification.Recipient, notification.CaseID)
		return nil
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("notification relay returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][webhook] send success kind=%s case_id=%s", notification.Kind, notification.CaseID)
	return nil
}

func isNotifierMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
