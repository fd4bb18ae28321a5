package domain

import "context"

// MailMessage is the wire contract on the send-mail queue.
type MailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// MailPublisher enqueues a mail message for asynchronous delivery. HTTP
// handlers never wait on the actual SMTP send.
type MailPublisher interface {
	Publish(ctx context.Context, msg MailMessage) error
}

// MailSender performs the actual delivery. Implemented by the SMTP relay.
type MailSender interface {
	Send(msg MailMessage) error
}
