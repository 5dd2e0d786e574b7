package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	"github.com/inkfolio/inkfolio/internal/shared/config"
)

var notificationTemplate = template.Must(template.New("contact").Parse(`<html>
<body>
	<h2>New contact submission</h2>
	<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
	<p><strong>Reason:</strong> {{.Reason}}</p>
	<p><strong>Received:</strong> {{.SubmittedAt}}</p>
	<blockquote style="white-space: pre-wrap">{{.Message}}</blockquote>
</body>
</html>`))

type notificationView struct {
	Name        string
	Email       string
	Reason      string
	Message     string
	SubmittedAt string
}

// SMTPNotifier mails the site owner whenever a contact submission arrives.
type SMTPNotifier struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
	}
}

func (n *SMTPNotifier) NotifyNewSubmission(_ context.Context, s *contact.Submission) error {
	m, err := n.buildMessage(s)
	if err != nil {
		return err
	}
	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(s *contact.Submission) (*gomail.Message, error) {
	view := notificationView{
		Name:        s.Name(),
		Email:       s.Email(),
		Reason:      s.Reason().String(),
		Message:     s.Message(),
		SubmittedAt: s.SubmittedAt().UTC().Format(time.RFC1123),
	}

	var html bytes.Buffer
	if err := notificationTemplate.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("failed to render notification: %w", err)
	}

	var plain strings.Builder
	fmt.Fprintf(&plain, "New contact submission\n\nFrom: %s <%s>\nReason: %s\nReceived: %s\n\n%s\n",
		view.Name, view.Email, view.Reason, view.SubmittedAt, view.Message)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.cfg.NotifyAddress)
	m.SetHeader("Reply-To", view.Email)
	m.SetHeader("Subject", fmt.Sprintf("[contact/%s] %s", view.Reason, view.Name))
	m.SetBody("text/plain", plain.String())
	m.AddAlternative("text/html", html.String())
	return m, nil
}

