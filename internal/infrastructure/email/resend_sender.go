package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"caza_backend/internal/usecase/interfaces"

	"github.com/resend/resend-go/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var ErrEmailAPIKeyMissing = errors.New("resend api key not configured")

// emailsAPI is the part of the Resend client the sender uses.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type Options struct {
	APIKey     string
	Sender     string
	MockMode   bool
	RatePerSec float64
	Burst      int
}

// ResendSender delivers staff notifications through Resend, throttled by a token bucket.
type ResendSender struct {
	api      emailsAPI
	sender   string
	mockMode bool
	limiter  *rate.Limiter
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(opts Options) (*ResendSender, error) {
	s := &ResendSender{
		sender:   opts.Sender,
		mockMode: opts.MockMode,
		limiter:  newLimiter(opts.RatePerSec, opts.Burst),
	}
	if opts.MockMode {
		log.Printf("[email][resend] mock mode enabled, messages are logged only")
		return s, nil
	}
	if opts.APIKey == "" {
		return nil, ErrEmailAPIKeyMissing
	}
	s.api = resend.NewClient(opts.APIKey).Emails
	return s, nil
}

func newLimiter(perSec float64, burst int) *rate.Limiter {
	if perSec <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSec), burst)
}

func (s *ResendSender) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient is required")
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	from := msg.From
	if from == "" {
		from = s.sender
	}
	if s.mockMode {
		log.WithFields(log.Fields{"to": msg.To, "subject": msg.Subject, "attachment": msg.Attachment != nil}).
			Info("[email][resend] mock send")
		return nil
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.Attachment != nil {
		req.Attachments = []*resend.Attachment{{
			Content:     msg.Attachment.Content,
			Filename:    msg.Attachment.Filename,
			ContentType: msg.Attachment.ContentType,
		}}
	}

	resp, err := s.api.SendWithContext(ctx, req)
	if err != nil {
		log.Printf("[email][resend] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[email][resend] sent to=%s id=%s", msg.To, resp.Id)
	return nil
}
