// Package content holds the literal copy rendered by the portfolio page.
package content

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Icon names a glyph from the embedded icon sprite.
type Icon string

const (
	IconCode       Icon = "code"
	IconGlobe      Icon = "globe"
	IconDatabase   Icon = "database"
	IconSmartphone Icon = "smartphone"
	IconGithub     Icon = "github"
	IconLinkedin   Icon = "linkedin"
	IconMail       Icon = "mail"
)

type Profile struct {
	Name        string `json:"name" validate:"required"`
	Headline    string `json:"headline" validate:"required"`
	Description string `json:"description" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	GitHub      string `json:"github" validate:"required,url"`
	LinkedIn    string `json:"linkedin" validate:"required,url"`
}

// Highlight is a card in the about section.
type Highlight struct {
	Icon        Icon   `json:"icon" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type Skill struct {
	Name  string `json:"name" validate:"required"`
	Level int    `json:"level" validate:"gte=0,lte=100"`
}

type SkillCategory struct {
	Title  string  `json:"title" validate:"required"`
	Skills []Skill `json:"skills" validate:"required,min=1,dive"`
}

type Project struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Image        string   `json:"image" validate:"required,url"`
	Technologies []string `json:"technologies" validate:"required,min=1,dive,required"`
	Live         string   `json:"live" validate:"required,url"`
	Source       string   `json:"source,omitempty" validate:"omitempty,url"`
}

// Link is an anchor; Href may be an in-page fragment or an absolute URL.
type Link struct {
	Label string `json:"label" validate:"required"`
	Href  string `json:"href" validate:"required"`
	Icon  Icon   `json:"icon,omitempty"`
}

// External reports whether the link leaves the page.
func (l Link) External() bool {
	u, err := url.Parse(l.Href)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

type FooterColumn struct {
	Title string   `json:"title" validate:"required"`
	Items []string `json:"items" validate:"required,min=1"`
}

type Footer struct {
	Tagline    string         `json:"tagline" validate:"required"`
	Columns    []FooterColumn `json:"columns" validate:"required,min=1,dive"`
	QuickLinks []Link         `json:"quick_links" validate:"required,min=1,dive"`
	Copyright  string         `json:"copyright" validate:"required"`
}

// Site is document level metadata for the page head.
type Site struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Keywords    []string `json:"keywords" validate:"required,min=1"`
	Author      string   `json:"author" validate:"required"`
	URL         string   `json:"url" validate:"required,url"`
	SiteName    string   `json:"site_name" validate:"required"`
	Locale      string   `json:"locale" validate:"required"`
	OGSummary   string   `json:"og_summary" validate:"required"`
	Twitter     string   `json:"twitter" validate:"required,startswith=@"`
	Robots      string   `json:"robots" validate:"required"`
}

// Portfolio is the complete page content.
type Portfolio struct {
	Site            Site            `json:"site"`
	Profile         Profile         `json:"profile"`
	Roles           []string        `json:"roles" validate:"required,min=1,dive,required"`
	Intro           []string        `json:"intro" validate:"required,min=1"`
	Achievement     string          `json:"achievement" validate:"required"`
	Expertise       []string        `json:"expertise" validate:"required,min=1,unique"`
	Highlights      []Highlight     `json:"highlights" validate:"required,min=1,dive"`
	SkillCategories []SkillCategory `json:"skill_categories" validate:"required,min=1,dive"`
	Projects        []Project       `json:"projects" validate:"required,min=1,dive"`
	Footer          Footer          `json:"footer"`
}

// Socials returns the profile links shown in the hero and footer.
func (p Portfolio) Socials(subject string) []Link {
	return []Link{
		{Label: "GitHub", Href: p.Profile.GitHub, Icon: IconGithub},
		{Label: "LinkedIn", Href: p.Profile.LinkedIn, Icon: IconLinkedin},
		{Label: "Email", Href: Mailto(p.Profile.Email, subject, "Hi "+firstName(p.Profile.Name)+",\n\n"), Icon: IconMail},
	}
}

// Mailto builds a mailto URL with an encoded subject and body.
func Mailto(address, subject, body string) string {
	q := url.Values{}
	if subject != "" {
		q.Set("subject", subject)
	}
	if body != "" {
		q.Set("body", body)
	}
	u := url.URL{Scheme: "mailto", Opaque: address}
	if len(q) > 0 {
		// mail clients show '+' literally
		u.RawQuery = strings.ReplaceAll(q.Encode(), "+", "%20")
	}
	return u.String()
}

func firstName(name string) string {
	for i, r := range name {
		if r == ' ' {
			return name[:i]
		}
	}
	return name
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the literal content once at start-up.
func Validate(p Portfolio) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid portfolio content: %w", err)
	}
	return nil
}
