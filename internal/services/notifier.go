package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/simplify-dev/simplify/internal/apperr"
	"github.com/simplify-dev/simplify/internal/models"
)

type Report struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Admin    string
}

// Notifier delivers issue reports to the admin mailbox off the request path.
// Enqueue never blocks the caller and delivery failures are logged, never
// surfaced; every dispatch attempt leaves a notification row behind.
type Notifier struct {
	db   *gorm.DB
	cfg  MailConfig
	log  *zap.Logger
	jobs chan Report
	wg   sync.WaitGroup
}

func NewNotifier(db *gorm.DB, cfg MailConfig, log *zap.Logger) *Notifier {
	return &Notifier{
		db:   db,
		cfg:  cfg,
		log:  log,
		jobs: make(chan Report, 64),
	}
}

// Start runs the delivery worker until ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case report := <-n.jobs:
				n.deliver(report)
			}
		}
	}()
}

// Stop waits for the worker to drain after its context is cancelled.
func (n *Notifier) Stop() {
	n.wg.Wait()
}

// EnqueueReport validates and queues a report. The caller gets success as
// soon as the job is accepted; a full queue drops the mail (still logged and
// recorded) rather than stalling the request.
func (n *Notifier) EnqueueReport(r Report) error {
	if r.Name == "" || r.Email == "" || r.Category == "" || r.Description == "" {
		return apperr.Invalid("All fields are required")
	}

	select {
	case n.jobs <- r:
		return nil
	default:
		n.log.Warn("report queue full, dropping mail", zap.String("category", r.Category))
		n.record(r, models.NotificationStatusFailed, nil)
		return nil
	}
}

func (n *Notifier) deliver(r Report) {
	if err := n.send(r); err != nil {
		n.log.Error("report mail failed",
			zap.String("category", r.Category),
			zap.Error(err))
		n.record(r, models.NotificationStatusFailed, nil)
		return
	}

	now := time.Now()
	n.record(r, models.NotificationStatusSent, &now)
	n.log.Info("report mail sent", zap.String("category", r.Category))
}

func (n *Notifier) send(r Report) error {
	if n.cfg.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Admin); err != nil {
		return err
	}
	if err := msg.To(n.cfg.Admin); err != nil {
		return err
	}
	if err := msg.ReplyTo(r.Email); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("New Report from %s: %s", r.Name, r.Category))
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"A new problem has been reported on Simplify.\n\nName: %s\nEmail: %s\nCategory: %s\n\nDescription:\n%s\n",
		r.Name, r.Email, r.Category, r.Description))

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic))
	if err != nil {
		return err
	}

	return client.DialAndSend(msg)
}

func (n *Notifier) record(r Report, status string, sentAt *time.Time) {
	payload, err := json.Marshal(r)
	if err != nil {
		n.log.Error("notification payload marshal failed", zap.Error(err))
		return
	}

	row := models.Notification{
		Kind:      "report",
		Recipient: n.cfg.Admin,
		Status:    status,
		Payload:   datatypes.JSON(payload),
		SentAt:    sentAt,
	}
	if err := n.db.Create(&row).Error; err != nil {
		n.log.Error("notification log write failed", zap.Error(err))
	}
}
