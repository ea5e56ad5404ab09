// Package contact validates and delivers messages from the contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

var (
	ErrNotConfigured = errors.New("SMTP credentials not configured")
	ErrRateLimited   = errors.New("contact rate limit exceeded")
)

// Message is the submitted form. Field names match the HTML inputs.
type Message struct {
	Name    string `form:"fullName" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email,max=200"`
	Message string `form:"message" validate:"required,min=2,max=5000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate trims the fields and returns an *InputError naming the first
// invalid one.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return &InputError{Field: "Name", Message: "Please remove line breaks from your name and email."}
	}

	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	field := verrs[0].Field()
	return &InputError{Field: field, Message: fieldMessages[field]}
}

var fieldMessages = map[string]string{
	"Name":    "Please enter your name.",
	"Email":   "Please enter a valid email address.",
	"Message": "Please enter a message.",
}

// Mailer delivers a message to the site owner.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// SMTPConfig mirrors the SMTP_* environment settings.
type SMTPConfig struct {
	Addr     string
	Host     string
	User     string
	Password string
	To       string
}

type SMTPMailer struct {
	cfg  SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	if err := s.send(s.cfg.Addr, auth, s.cfg.User, []string{s.cfg.To}, Compose(s.cfg.User, s.cfg.To, m)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

// Compose builds the RFC 5322 message. Reply-To is the visitor so a reply
// goes straight back to them.
func Compose(from, to string, m Message) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: Portfolio Contact: " + m.Name + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}

// Limiter hands out one token bucket per client.
type Limiter struct {
	mu      sync.Mutex
	perMin  int
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter allows perMinute messages per client, with a burst of the same.
func NewLimiter(perMinute int) *Limiter {
	perMinute = max(perMinute, 1)
	return &Limiter{
		perMin:  perMinute,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMin)), l.perMin)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Prune drops buckets idle for longer than idle.
func (l *Limiter) Prune(idle time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-idle)
	n := 0
	for k, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, k)
			n++
		}
	}
	return n
}

// Service ties validation, rate limiting and delivery together.
type Service struct {
	mailer  Mailer
	limiter *Limiter
}

func NewService(mailer Mailer, limiter *Limiter) *Service {
	return &Service{mailer: mailer, limiter: limiter}
}

// Submit validates m and sends it on behalf of client.
func (s *Service) Submit(ctx context.Context, client string, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !s.limiter.Allow(client) {
		return ErrRateLimited
	}
	return s.mailer.Send(ctx, m)
}

// InputError is a validation failure the visitor can fix. Message is safe to
// show to them.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return "invalid contact field " + e.Field
}
