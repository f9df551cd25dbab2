package mailer

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Mailer sends mail through SMTP. Send is fire-and-forget: delivery runs on
// a detached goroutine, is never retried, and failures are only logged.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

// New creates a Mailer. With an empty host the mailer is disabled and Send
// drops messages silently.
func New(host string, port int, username, password, from string, log *logrus.Logger) *Mailer {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &Mailer{dialer: dialer, from: from, log: log}
}

// Send dispatches the message in the background and returns immediately.
func (m *Mailer) Send(subject string, recipients []string, textBody, htmlBody string) {
	if m.dialer == nil {
		m.log.WithField("subject", subject).Debug("mailer disabled, dropping message")
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.log.WithError(err).WithField("subject", subject).Error("failed to send email")
		}
	}()
}
