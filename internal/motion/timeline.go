package motion

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// Step is a timeline entry. Position is relative to the end of the timeline
// so far: "" appends, "-=0.6" overlaps by 0.6s, "+=0.2" leaves a gap.
type Step struct {
	Target   string
	Tween    Tween
	Position string
}

// Timeline sequences entrance tweens that play once on load.
type Timeline struct {
	Delay float64
	Steps []Step
}

// Scheduled is a step with its absolute start time.
type Scheduled struct {
	Target string  `json:"target"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
	Tween  Tween   `json:"tween"`
}

// Attr renders the step as a data-enter attribute played on page load.
func (s Scheduled) Attr() template.HTMLAttr {
	t := s.Tween
	t.Delay = s.Start
	return dataAttr("data-enter", t)
}

// Schedule resolves every step to absolute start and end times.
func (tl Timeline) Schedule() ([]Scheduled, error) {
	out := make([]Scheduled, 0, len(tl.Steps))
	end := tl.Delay
	for _, s := range tl.Steps {
		offset, err := parsePosition(s.Position)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", s.Target, err)
		}
		start := max(0, end+offset)
		stepEnd := start + s.Tween.Duration
		out = append(out, Scheduled{
			Target: s.Target,
			Start:  round(start),
			End:    round(stepEnd),
			Tween:  s.Tween,
		})
		end = max(end, stepEnd)
	}
	return out, nil
}

// Duration is the time at which the last step finishes.
func (tl Timeline) Duration() (float64, error) {
	steps, err := tl.Schedule()
	if err != nil {
		return 0, err
	}
	d := tl.Delay
	for _, s := range steps {
		d = max(d, s.End)
	}
	return d, nil
}

func parsePosition(pos string) (float64, error) {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return 0, nil
	}
	if len(pos) < 3 || pos[1] != '=' {
		return 0, fmt.Errorf("invalid position %q", pos)
	}
	v, err := strconv.ParseFloat(pos[2:], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", pos, err)
	}
	switch pos[0] {
	case '-':
		return -v, nil
	case '+':
		return v, nil
	}
	return 0, fmt.Errorf("invalid position %q", pos)
}
