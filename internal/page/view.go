package page

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/aashiqfarid/portfolio/internal/content"
	"github.com/aashiqfarid/portfolio/internal/motion"
	"github.com/aashiqfarid/portfolio/internal/typewriter"
)

// View is everything index.html needs.
type View struct {
	Site     content.Site
	Hero     Hero
	About    About
	Skills   Skills
	Projects Projects
	Footer   Footer
	// Static hides the parts that post back to the server.
	Static bool
}

type Hero struct {
	Name        string
	Description string
	Roles       []string
	// Typewriter is the JSON config read by typewriter.js.
	Typewriter string
	Stream     string
	Enter      map[string]template.HTMLAttr
	Socials    []content.Link
}

type About struct {
	Title       template.HTMLAttr
	Content     template.HTMLAttr
	Name        string
	Intro       []string
	Achievement string
	Expertise   []string
	Cards       []HighlightCard
}

type HighlightCard struct {
	content.Highlight
	Reveal template.HTMLAttr
}

type Skills struct {
	Title template.HTMLAttr
	Cards []SkillCard
}

type SkillCard struct {
	Index  int
	Title  string
	Reveal template.HTMLAttr
	Bars   []SkillBar
}

type SkillBar struct {
	Name   string
	Level  int
	Width  string
	Reveal template.HTMLAttr
}

type Projects struct {
	Title template.HTMLAttr
	Cards []ProjectCard
}

type ProjectCard struct {
	content.Project
	Reveal template.HTMLAttr
}

type Footer struct {
	content.Footer
	Name    string
	Reveal  template.HTMLAttr
	Socials []content.Link
}

// Options tune parts of the view that depend on the deployment.
type Options struct {
	// Stream is the server-sent events endpoint for the typewriter; empty
	// leaves the browser on its local timers.
	Stream string
	// Static renders for hosting without the server: no contact form and
	// no privacy page link.
	Static bool
}

// Build assembles the section view models from the portfolio content.
func Build(p content.Portfolio, opts Options) (View, error) {
	hero, err := buildHero(p, opts)
	if err != nil {
		return View{}, err
	}
	return View{
		Site:     p.Site,
		Hero:     hero,
		About:    buildAbout(p),
		Skills:   buildSkills(p),
		Projects: buildProjects(p),
		Footer: Footer{
			Footer:  p.Footer,
			Name:    p.Profile.Name,
			Reveal:  motion.FooterReveal().Attr(),
			Socials: p.Socials("Portfolio Contact"),
		},
		Static: opts.Static,
	}, nil
}

func buildHero(p content.Portfolio, opts Options) (Hero, error) {
	tw, err := typewriter.New(p.Roles)
	if err != nil {
		return Hero{}, err
	}
	cfg, err := json.Marshal(struct {
		Roles  []string `json:"roles"`
		TypeMs int64    `json:"typeMs"`
		HoldMs int64    `json:"holdMs"`
	}{p.Roles, tw.TypeDelay().Milliseconds(), tw.HoldDelay().Milliseconds()})
	if err != nil {
		return Hero{}, fmt.Errorf("encode typewriter config: %w", err)
	}

	steps, err := motion.HeroEntrance().Schedule()
	if err != nil {
		return Hero{}, fmt.Errorf("schedule hero entrance: %w", err)
	}
	enter := make(map[string]template.HTMLAttr, len(steps))
	for _, s := range steps {
		enter[s.Target] = s.Attr()
	}

	return Hero{
		Name:        p.Profile.Name,
		Description: p.Profile.Description,
		Roles:       p.Roles,
		Typewriter:  string(cfg),
		Stream:      opts.Stream,
		Enter:       enter,
		Socials:     p.Socials("Portfolio Inquiry"),
	}, nil
}

func buildAbout(p content.Portfolio) About {
	reveals := motion.HighlightCards().Group(len(p.Highlights))
	cards := make([]HighlightCard, len(p.Highlights))
	for i, h := range p.Highlights {
		cards[i] = HighlightCard{Highlight: h, Reveal: reveals[i].Attr()}
	}
	return About{
		Title:       motion.FadeUp().Attr(),
		Content:     motion.SlideIn().Attr(),
		Name:        p.Profile.Name,
		Intro:       p.Intro,
		Achievement: p.Achievement,
		Expertise:   p.Expertise,
		Cards:       cards,
	}
}

func buildSkills(p content.Portfolio) Skills {
	reveals := motion.SkillCards().Group(len(p.SkillCategories))
	cards := make([]SkillCard, len(p.SkillCategories))
	for i, cat := range p.SkillCategories {
		bars := make([]SkillBar, len(cat.Skills))
		for j, s := range cat.Skills {
			bars[j] = SkillBar{
				Name:   s.Name,
				Level:  s.Level,
				Width:  motion.Percent(s.Level),
				Reveal: motion.SkillBar(s.Level, j).Attr(),
			}
		}
		cards[i] = SkillCard{Index: i, Title: cat.Title, Reveal: reveals[i].Attr(), Bars: bars}
	}
	return Skills{Title: motion.FadeUp().Attr(), Cards: cards}
}

func buildProjects(p content.Portfolio) Projects {
	reveals := motion.ProjectCards().Group(len(p.Projects))
	cards := make([]ProjectCard, len(p.Projects))
	for i, proj := range p.Projects {
		cards[i] = ProjectCard{Project: proj, Reveal: reveals[i].Attr()}
	}
	return Projects{Title: motion.FadeUp().Attr(), Cards: cards}
}
