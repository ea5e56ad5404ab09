// Package typewriter cycles through role titles one character at a time.
package typewriter

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTypeDelay = 100 * time.Millisecond
	DefaultHoldDelay = 2000 * time.Millisecond
)

var ErrNoRoles = errors.New("typewriter: no roles")

// Frame is the text shown after waiting Delay.
type Frame struct {
	Text  string        `json:"text"`
	Index int           `json:"index"`
	Delay time.Duration `json:"-"`
}

type Option func(*Typewriter)

// WithDelays overrides the per-character and end-of-role delays.
func WithDelays(typeDelay, holdDelay time.Duration) Option {
	return func(t *Typewriter) {
		t.typeDelay = typeDelay
		t.holdDelay = holdDelay
	}
}

// Typewriter is not safe for concurrent use; each viewer gets its own.
type Typewriter struct {
	roles     [][]rune
	typeDelay time.Duration
	holdDelay time.Duration

	index int
	shown int
}

func New(roles []string, opts ...Option) (*Typewriter, error) {
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}
	t := &Typewriter{
		roles:     make([][]rune, len(roles)),
		typeDelay: DefaultTypeDelay,
		holdDelay: DefaultHoldDelay,
	}
	for i, r := range roles {
		if r == "" {
			return nil, fmt.Errorf("typewriter: role %d is empty", i)
		}
		t.roles[i] = []rune(r)
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.typeDelay <= 0 || t.holdDelay <= 0 {
		return nil, fmt.Errorf("typewriter: delays must be positive, got %s and %s", t.typeDelay, t.holdDelay)
	}
	return t, nil
}

func (t *Typewriter) Text() string { return string(t.roles[t.index][:t.shown]) }
func (t *Typewriter) Index() int   { return t.index }

func (t *Typewriter) TypeDelay() time.Duration { return t.typeDelay }
func (t *Typewriter) HoldDelay() time.Duration { return t.holdDelay }

// Step advances one transition: a character is appended while the role is
// incomplete, otherwise the text is cleared and the next role selected.
func (t *Typewriter) Step() Frame {
	role := t.roles[t.index]
	if t.shown < len(role) {
		t.shown++
		return Frame{Text: t.Text(), Index: t.index, Delay: t.typeDelay}
	}
	t.shown = 0
	t.index = (t.index + 1) % len(t.roles)
	return Frame{Text: "", Index: t.index, Delay: t.holdDelay}
}

// Cycle returns the frames of one full rotation starting from the current
// state. Afterwards the typewriter is back where it began.
func (t *Typewriter) Cycle() []Frame {
	startIndex, startShown := t.index, t.shown
	var frames []Frame
	for {
		f := t.Step()
		frames = append(frames, f)
		if t.index == startIndex && t.shown == startShown {
			return frames
		}
	}
}

// Run emits frames until ctx is done. The pending timer is stopped before
// Run returns.
func (t *Typewriter) Run(ctx context.Context, emit func(Frame) error) error {
	timer := time.NewTimer(t.nextDelay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			if err := emit(t.Step()); err != nil {
				return err
			}
			timer.Reset(t.nextDelay())
		}
	}
}

func (t *Typewriter) nextDelay() time.Duration {
	if t.shown < len(t.roles[t.index]) {
		return t.typeDelay
	}
	return t.holdDelay
}
