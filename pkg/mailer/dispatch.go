package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/oksasatya/go-ddd-wallet/pkg/mailer/templates"
)

// ErrMalformedJob marks a job that can never be delivered; it should be dropped, not requeued.
var ErrMalformedJob = errors.New("malformed email job")

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Dispatch decodes a queued job, renders its template if any and sends it.
// Errors wrapping ErrMalformedJob are permanent; anything else is worth a retry.
func Dispatch(ctx context.Context, body []byte, s Sender) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}
	if strings.TrimSpace(job.To) == "" {
		return fmt.Errorf("%w: missing recipient", ErrMalformedJob)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = templates.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedJob, err)
		}
	}
	if subject == "" || (text == "" && html == "") {
		return fmt.Errorf("%w: empty message", ErrMalformedJob)
	}

	return s.Send(ctx, job.To, subject, text, html)
}
