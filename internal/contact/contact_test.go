package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Validate(t *testing.T) {
	valid := Message{Name: "  Ada Lovelace ", Email: "ada@example.com", Message: "Hello there"}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "Ada Lovelace", valid.Name)

	tests := []struct {
		name  string
		msg   Message
		field string
	}{
		{"missing name", Message{Email: "ada@example.com", Message: "Hi!"}, "Name"},
		{"bad email", Message{Name: "Ada", Email: "ada-at-example", Message: "Hi!"}, "Email"},
		{"blank message", Message{Name: "Ada", Email: "ada@example.com", Message: "   "}, "Message"},
		{"header injection", Message{Name: "Ada\r\nBcc: x@example.com", Email: "ada@example.com", Message: "Hi!"}, "Name"},
		{"too long", Message{Name: strings.Repeat("a", 101), Email: "ada@example.com", Message: "Hi!"}, "Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			var inErr *InputError
			require.ErrorAs(t, err, &inErr)
			assert.Equal(t, tt.field, inErr.Field)
			assert.NotEmpty(t, inErr.Message)
		})
	}
}

func TestCompose(t *testing.T) {
	raw := string(Compose("site@example.com", "owner@example.com", Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}))

	assert.True(t, strings.HasPrefix(raw, "To: owner@example.com\r\n"))
	assert.Contains(t, raw, "Subject: Portfolio Contact: Ada\r\n")
	assert.Contains(t, raw, "Reply-To: ada@example.com\r\n")
	assert.Contains(t, raw, "\r\n\r\n\nNew contact form submission")
	assert.Contains(t, raw, "Message:\nHello\n")
}

func TestSMTPMailer(t *testing.T) {
	m := Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

	unconfigured := NewSMTPMailer(SMTPConfig{Addr: "smtp.example.com:587", Host: "smtp.example.com"})
	assert.ErrorIs(t, unconfigured.Send(context.Background(), m), ErrNotConfigured)

	mailer := NewSMTPMailer(SMTPConfig{
		Addr: "smtp.example.com:587", Host: "smtp.example.com",
		User: "site@example.com", Password: "pw", To: "owner@example.com",
	})
	var gotAddr, gotFrom string
	var gotTo []string
	mailer.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo = addr, from, to
		return nil
	}
	require.NoError(t, mailer.Send(context.Background(), m))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)

	mailer.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("dial tcp: refused") }
	err := mailer.Send(context.Background(), m)
	assert.ErrorContains(t, err, "send contact email")
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(2)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "clients have separate buckets")

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	now = now.Add(time.Hour)
	assert.Equal(t, 1, l.Prune(time.Hour), "only b has been idle for an hour")
}

type recordingMailer struct {
	sent []Message
	err  error
}

func (r *recordingMailer) Send(_ context.Context, m Message) error {
	r.sent = append(r.sent, m)
	return r.err
}

func TestService_Submit(t *testing.T) {
	mailer := &recordingMailer{}
	svc := NewService(mailer, NewLimiter(1))
	ctx := context.Background()
	m := Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

	var inErr *InputError
	assert.ErrorAs(t, svc.Submit(ctx, "1.2.3.4", Message{}), &inErr)

	require.NoError(t, svc.Submit(ctx, "1.2.3.4", m))
	assert.ErrorIs(t, svc.Submit(ctx, "1.2.3.4", m), ErrRateLimited)
	require.Len(t, mailer.sent, 1)
}
