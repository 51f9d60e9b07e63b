package interfaces

import "context"

type EmailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

type EmailMessage struct {
	To         string
	Subject    string
	HTML       string
	From       string
	Attachment *EmailAttachment
}

// IEmailSender is the outbound notification sink.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}
