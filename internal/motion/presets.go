package motion

import "strconv"

// Defaults for section reveals.
const (
	SectionStart = "top 80%"
	SectionEnd   = "bottom 20%"
)

func sectionTrigger() Trigger {
	return Trigger{Start: SectionStart, End: SectionEnd, Actions: PlayReverse}
}

// FadeUp is the section title reveal.
func FadeUp() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), Y: F(50)},
			To:       State{Opacity: F(1), Y: F(0)},
			Duration: 1,
			Ease:     EasePower3Out,
		},
		Trigger: sectionTrigger(),
	}
}

// SlideIn brings the about copy in from the left.
func SlideIn() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), X: F(-50)},
			To:       State{Opacity: F(1), X: F(0)},
			Duration: 1,
			Ease:     EasePower3Out,
		},
		Trigger: sectionTrigger(),
	}
}

func HighlightCards() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), Y: F(30), Scale: F(0.9)},
			To:       State{Opacity: F(1), Y: F(0), Scale: F(1)},
			Duration: 0.8,
			Ease:     EasePower3Out,
			Stagger:  Stagger{Each: 0.2},
		},
		Trigger: sectionTrigger(),
	}
}

func SkillCards() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), Y: F(50), RotateY: F(15)},
			To:       State{Opacity: F(1), Y: F(0), RotateY: F(0)},
			Duration: 1,
			Ease:     EasePower3Out,
			Stagger:  Stagger{Each: 0.2},
		},
		Trigger: sectionTrigger(),
	}
}

// SkillBar grows a proficiency bar from empty to level percent. The i-th bar
// of a card starts 0.1s after the one above it.
func SkillBar(level, i int) Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Width: "0%"},
			To:       State{Width: Percent(level)},
			Duration: 1.5,
			Delay:    round(0.3 + float64(i)*0.1),
			Ease:     EasePower2Out,
		},
		Trigger: Trigger{Start: "top 70%", End: "bottom 30%", Actions: PlayReverse},
	}
}

func ProjectCards() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), Y: F(60), Scale: F(0.8), RotateX: F(15)},
			To:       State{Opacity: F(1), Y: F(0), Scale: F(1), RotateX: F(0)},
			Duration: 1,
			Ease:     EasePower3Out,
			Stagger:  Stagger{Amount: 1.2},
		},
		Trigger: sectionTrigger(),
	}
}

func FooterReveal() Reveal {
	return Reveal{
		Tween: Tween{
			From:     State{Opacity: F(0), Y: F(50)},
			To:       State{Opacity: F(1), Y: F(0)},
			Duration: 1,
			Ease:     EasePower3Out,
		},
		Trigger: Trigger{Start: "top 90%", End: "bottom 10%", Actions: PlayReverse},
	}
}

// Hero targets, in entrance order.
const (
	HeroTitle       = "title"
	HeroSubtitle    = "subtitle"
	HeroDescription = "description"
	HeroButtons     = "buttons"
	HeroSocial      = "social"
)

// HeroEntrance is the load-time sequence of the hero section.
func HeroEntrance() Timeline {
	rise := func(d float64) Tween {
		return Tween{
			From:     State{Opacity: F(0), Y: F(50)},
			To:       State{Opacity: F(1), Y: F(0)},
			Duration: d,
			Ease:     EasePower3Out,
		}
	}
	return Timeline{
		Delay: 0.2,
		Steps: []Step{
			{Target: HeroTitle, Tween: rise(1)},
			{Target: HeroSubtitle, Tween: rise(0.8), Position: "-=0.6"},
			{Target: HeroDescription, Tween: rise(0.8), Position: "-=0.4"},
			{Target: HeroButtons, Tween: rise(0.8), Position: "-=0.4"},
			{Target: HeroSocial, Tween: rise(0.8), Position: "-=0.6"},
		},
	}
}

// Percent clamps level to [0,100] and formats it as a CSS width.
func Percent(level int) string {
	return strconv.Itoa(min(max(level, 0), 100)) + "%"
}
