package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	"github.com/oksasatya/go-ddd-wallet/config"
)

const sendTimeout = 10 * time.Second

// Mailgun delivers rendered messages through the Mailgun HTTP API.
type Mailgun struct {
	client *mg.MailgunImpl
	from   string
}

// NewMailgun targets the EU API when cfg.Region is "eu".
func NewMailgun(cfg config.Mailgun) *Mailgun {
	client := mg.NewMailgun(cfg.Domain, cfg.APIKey)
	if strings.EqualFold(cfg.Region, "eu") {
		client.SetAPIBase(mg.APIBaseEU)
	}
	return &Mailgun{client: client, from: cfg.Sender}
}

func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	msg := m.client.NewMessage(m.from, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if _, _, err := m.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send to %s: %w", to, err)
	}
	return nil
}

var _ Sender = (*Mailgun)(nil)
