package email

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkfolio/inkfolio/internal/domain/contact"
	vo "github.com/inkfolio/inkfolio/internal/domain/contact/valueobjects"
	"github.com/inkfolio/inkfolio/internal/shared/config"
)

func TestSMTPNotifier_BuildMessage(t *testing.T) {
	n := NewSMTPNotifier(config.EmailConfig{
		SMTPHost:      "localhost",
		SMTPPort:      25,
		FromAddress:   "site@example.com",
		FromName:      "Inkfolio",
		NotifyAddress: "owner@example.com",
	})

	s, err := contact.NewSubmission("Mallory", "mallory@example.com", vo.ReasonYoga,
		"<script>alert(1)</script>", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	m, err := n.buildMessage(s)
	require.NoError(t, err)

	assert.Equal(t, []string{"owner@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"mallory@example.com"}, m.GetHeader("Reply-To"))
	assert.Equal(t, []string{"[contact/yoga] Mallory"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "&lt;script&gt;")
	assert.NotContains(t, raw, "<blockquote style=3D\"white-space: pre-wrap\"><script>")
}
