package mail

import (
	"context"

	"gopkg.in/gomail.v2"
)

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender hands a composed message to a mail relay.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
}

func NewSMTPSender(host string, port int, user, pass string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, user, pass)}
}

func (s *SMTPSender) Send(_ context.Context, msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)
	return s.dialer.DialAndSend(m)
}
