package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

// LogNotifier writes operator notifications to the process log. It is the
// default sink when no webhook is configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, n entities.Notification) {
	log.Printf("[notify][%s] %s: %s", n.Severity, n.Title, n.Description)
}

// WebhookNotifier POSTs notifications as JSON to a configured endpoint.
// Fire-and-forget: delivery failures are logged, never returned.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{url: url, client: &http.Client{Timeout: 10 * time.Second}}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n entities.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		log.Printf("[notify] failed to marshal notification: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		log.Printf("[notify] failed to build webhook request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("[notify] webhook delivery failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[notify] webhook rejected notification: status %d: %s", resp.StatusCode, string(body))
	}
}

// NewNotifierFromEnv picks the webhook sink when NOTIFY_WEBHOOK_URL is set,
// the log sink otherwise.
func NewNotifierFromEnv() interfaces.INotifier {
	if url := os.Getenv("NOTIFY_WEBHOOK_URL"); url != "" {
		log.Printf("[notify] using webhook notifier")
		return NewWebhookNotifier(url)
	}
	return LogNotifier{}
}
