// Package motion describes scroll-triggered transitions for the page script.
//
// A Reveal pairs a Tween with a Trigger. The server renders each Reveal into
// a data attribute and static/js/motion.js plays it when the element crosses
// the trigger line, reversing it when the element scrolls back out.
package motion

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"math"
	"strings"
)

type Ease string

const (
	EasePower2Out   Ease = "power2.out"
	EasePower3Out   Ease = "power3.out"
	EasePower2InOut Ease = "power2.inOut"
)

// State is a set of visual properties. Nil fields are left untouched.
type State struct {
	Opacity *float64 `json:"opacity,omitempty"`
	X       *float64 `json:"x,omitempty"`
	Y       *float64 `json:"y,omitempty"`
	Scale   *float64 `json:"scale,omitempty"`
	RotateX *float64 `json:"rotateX,omitempty"`
	RotateY *float64 `json:"rotateY,omitempty"`
	Width   string   `json:"width,omitempty"`
}

// F returns a pointer for State literals.
func F(v float64) *float64 { return &v }

// Visible is the resting state every reveal ends in.
func Visible() State {
	return State{Opacity: F(1), X: F(0), Y: F(0), Scale: F(1), RotateX: F(0), RotateY: F(0)}
}

type Tween struct {
	From     State   `json:"from"`
	To       State   `json:"to"`
	Duration float64 `json:"duration"`
	Delay    float64 `json:"delay,omitempty"`
	Ease     Ease    `json:"ease"`
	Stagger  Stagger `json:"-"`
}

// Stagger spaces the children of a group. Each is a fixed gap; Amount is a
// total spread evenly from the first child to the last. Amount wins when both
// are set.
type Stagger struct {
	Each   float64
	Amount float64
}

// Offsets returns the extra delay of each of n children.
func (s Stagger) Offsets(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	step := s.Each
	if s.Amount > 0 {
		step = 0
		if n > 1 {
			step = s.Amount / float64(n-1)
		}
	}
	for i := range out {
		out[i] = round(float64(i) * step)
	}
	return out
}

type Action string

const (
	ActionPlay     Action = "play"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionReverse  Action = "reverse"
	ActionRestart  Action = "restart"
	ActionReset    Action = "reset"
	ActionComplete Action = "complete"
	ActionNone     Action = "none"
)

var ErrToggleAction = errors.New("invalid toggle action")

// ToggleActions are the actions for enter, leave, enter-back and leave-back.
type ToggleActions [4]Action

func (t ToggleActions) String() string {
	parts := make([]string, len(t))
	for i, a := range t {
		parts[i] = string(a)
	}
	return strings.Join(parts, " ")
}

func (t ToggleActions) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t ToggleActions) OnEnter() Action     { return t[0] }
func (t ToggleActions) OnLeave() Action     { return t[1] }
func (t ToggleActions) OnEnterBack() Action { return t[2] }
func (t ToggleActions) OnLeaveBack() Action { return t[3] }

// ParseToggleActions parses four space separated actions,
// e.g. "play none none reverse".
func ParseToggleActions(s string) (ToggleActions, error) {
	var out ToggleActions
	fields := strings.Fields(s)
	if len(fields) != len(out) {
		return out, fmt.Errorf("%w: want 4 actions, got %d in %q", ErrToggleAction, len(fields), s)
	}
	for i, f := range fields {
		switch a := Action(f); a {
		case ActionPlay, ActionPause, ActionResume, ActionReverse,
			ActionRestart, ActionReset, ActionComplete, ActionNone:
			out[i] = a
		default:
			return ToggleActions{}, fmt.Errorf("%w: %q", ErrToggleAction, f)
		}
	}
	return out, nil
}

// PlayReverse plays on enter and reverses when the element scrolls back out.
var PlayReverse = ToggleActions{ActionPlay, ActionNone, ActionNone, ActionReverse}

// Trigger positions are "<element edge> <viewport percent>", e.g. "top 80%".
type Trigger struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Actions ToggleActions `json:"actions"`
}

// Reveal is a tween played by a scroll trigger.
type Reveal struct {
	Tween
	Trigger Trigger `json:"trigger"`
}

// Delayed returns a copy with extra delay, used for staggered children.
func (r Reveal) Delayed(extra float64) Reveal {
	r.Delay = round(r.Delay + extra)
	return r
}

// Group returns one reveal per child with the stagger applied.
func (r Reveal) Group(n int) []Reveal {
	if n <= 0 {
		return nil
	}
	offsets := r.Stagger.Offsets(n)
	out := make([]Reveal, n)
	for i, off := range offsets {
		out[i] = r.Delayed(off)
	}
	return out
}

// Attr renders the reveal as a data-reveal attribute.
func (r Reveal) Attr() template.HTMLAttr {
	return dataAttr("data-reveal", r)
}

func dataAttr(name string, v any) template.HTMLAttr {
	b, err := json.Marshal(v)
	if err != nil {
		// only plain values are marshalled here
		panic(err)
	}
	return template.HTMLAttr(name + `="` + template.HTMLEscapeString(string(b)) + `"`)
}

// round trims float noise to milliseconds.
func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
