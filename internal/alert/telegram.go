package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/hotel-search/hotel-search-and-aggregation-system/internal/infrastructure/retry"
)

// telegramAPIBase is the Telegram Bot API endpoint template.
const telegramAPIBase = "https://api.telegram.org/bot%s/sendMessage"

// telegramTimeout bounds one delivery attempt.
const telegramTimeout = 10 * time.Second

// TelegramNotifier forwards critical alerts to a Telegram chat. Delivery is
// best effort: failures are retried with backoff and then logged, never
// surfaced to the search path.
type TelegramNotifier struct {
	token  string
	chatID string
	client *http.Client
	log    zerolog.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(token, chatID string, log zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		token:  token,
		chatID: chatID,
		client: &http.Client{Timeout: telegramTimeout},
		log:    log,
	}
}

// Notify implements Subscriber. Only warnings and critical alerts are
// forwarded; info-level noise stays out of the chat.
func (t *TelegramNotifier) Notify(alert Alert) {
	if alert.Severity == SeverityInfo {
		return
	}

	text := fmt.Sprintf("<b>%s</b>\n%s", alert.Title, alert.Message)
	if alert.Provider != "" {
		text += fmt.Sprintf("\n\nSupplier: %s", alert.Provider)
	}

	err := retry.Do(context.Background(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), telegramTimeout)
		defer cancel()
		return t.send(ctx, text)
	}, retry.ProviderConfig)
	if err != nil {
		t.log.Error().Err(err).Str("title", alert.Title).Msg("Telegram alert delivery failed")
	}
}

func (t *TelegramNotifier) send(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf(telegramAPIBase, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier writes alerts to the structured log. It stands in for the UI
// notification display in headless deployments.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a log-backed subscriber.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify implements Subscriber.
func (n *LogNotifier) Notify(alert Alert) {
	var event *zerolog.Event
	switch alert.Severity {
	case SeverityCritical:
		event = n.log.Error()
	case SeverityWarning:
		event = n.log.Warn()
	default:
		event = n.log.Info()
	}
	event.
		Str("provider", alert.Provider).
		Str("title", alert.Title).
		Msg(alert.Message)
}

// Ensure both notifiers implement Subscriber at compile time.
var (
	_ Subscriber = (*TelegramNotifier)(nil)
	_ Subscriber = (*LogNotifier)(nil)
)
