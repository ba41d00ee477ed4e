package notify

import (
	"context"
	"time"

	"github.com/oksasatya/go-ddd-wallet/config"
	"github.com/oksasatya/go-ddd-wallet/internal/application"
	"github.com/oksasatya/go-ddd-wallet/internal/domain/entity"
	"github.com/oksasatya/go-ddd-wallet/pkg/mailer"
	"github.com/oksasatya/go-ddd-wallet/pkg/mailer/templates"
)

// Publisher puts a JSON message on the email queue. helpers.RabbitQueue satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier queues a welcome email for every new user.
type WelcomeNotifier struct {
	pub Publisher
	cfg *config.Config
}

func NewWelcomeNotifier(pub Publisher, cfg *config.Config) *WelcomeNotifier {
	return &WelcomeNotifier{pub: pub, cfg: cfg}
}

func (n *WelcomeNotifier) UserCreated(ctx context.Context, u *entity.User) error {
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(n.cfg, u.FullName(), u.Email, templates.WithTime(u.CreatedAt)),
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return n.pub.PublishJSON(c, job)
}

var _ application.UserNotifier = (*WelcomeNotifier)(nil)
