package page

import (
	"bytes"
	"io/fs"
	"strconv"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashiqfarid/portfolio/internal/content"
)

func render(t *testing.T, p content.Portfolio, opts Options) *goquery.Document {
	t.Helper()

	view, err := Build(p, opts)
	require.NoError(t, err)

	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, view))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRender_CardCounts(t *testing.T) {
	doc := render(t, content.Default, Options{})

	assert.Equal(t, 4, doc.Find("#about .highlight-card").Length())
	assert.Equal(t, 3, doc.Find("#skills .skill-card").Length())
	assert.Equal(t, 15, doc.Find("#skills .skill-bar").Length())
	assert.Equal(t, 6, doc.Find("#projects .project-card").Length())
	assert.Equal(t, len(content.Default.Expertise), doc.Find("#about .badge").Length())
}

func TestRender_Sections(t *testing.T) {
	doc := render(t, content.Default, Options{})

	for _, id := range []string{"about", "skills", "projects", "contact"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), id)
	}

	var hrefs []string
	doc.Find(".quick-links a").Each(func(_ int, s *goquery.Selection) {
		hrefs = append(hrefs, s.AttrOr("href", ""))
	})
	assert.Equal(t, []string{"#about", "#skills", "#projects", "#contact"}, hrefs)

	assert.Equal(t, "#projects", doc.Find(".hero-buttons a").First().AttrOr("href", ""))
	assert.Equal(t, "#contact", doc.Find(".hero-buttons a").Last().AttrOr("href", ""))
}

func TestRender_SkillBarWidths(t *testing.T) {
	doc := render(t, content.Default, Options{})

	var want []string
	for _, cat := range content.Default.SkillCategories {
		for _, s := range cat.Skills {
			want = append(want, "width: "+motionPercent(s.Level))
		}
	}

	var got []string
	doc.Find(".skill-bar").Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.AttrOr("style", ""))
		assert.Contains(t, s.AttrOr("data-reveal", ""), `"start":"top 70%"`)
	})
	assert.Equal(t, want, got)
	assert.Equal(t, "95%", doc.Find(".skill-level").First().Text())
}

func TestRender_ExternalLinks(t *testing.T) {
	doc := render(t, content.Default, Options{})

	doc.Find(".project-card").Each(func(i int, s *goquery.Selection) {
		link := s.Find("a.live-link")
		assert.Equal(t, content.Default.Projects[i].Live, link.AttrOr("href", ""))
		assert.Equal(t, "_blank", link.AttrOr("target", ""))
		assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
		assert.Equal(t, 0, s.Find("a.source-link").Length())
		assert.Equal(t, content.Default.Projects[i].Image, s.Find("img").AttrOr("src", ""))
	})

	social := doc.Find(".hero-social a")
	require.Equal(t, 3, social.Length())
	assert.Equal(t, "https://github.com/af1233", social.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "_blank", social.Eq(0).AttrOr("target", ""))
	assert.Equal(t, "https://www.linkedin.com/in/aashiq-farid/", social.Eq(1).AttrOr("href", ""))
	assert.Contains(t, social.Eq(2).AttrOr("href", ""), "mailto:aashiqfarid64@gmail.com?")
	_, hasTarget := social.Eq(2).Attr("target")
	assert.False(t, hasTarget)

	footer := doc.Find(".footer-social a")
	require.Equal(t, 3, footer.Length())
	assert.Contains(t, footer.Eq(2).AttrOr("href", ""), "subject=Portfolio%20Contact")
}

func TestRender_SourceLinkWhenPresent(t *testing.T) {
	p := content.Default
	p.Projects = []content.Project{{
		Title:        "Portfolio",
		Description:  "This site",
		Image:        "https://example.com/p.png",
		Technologies: []string{"Go"},
		Live:         "https://example.com",
		Source:       "https://github.com/example/portfolio",
	}}
	doc := render(t, p, Options{})

	assert.Equal(t, 1, doc.Find(".project-card").Length())
	assert.Equal(t, "https://github.com/example/portfolio", doc.Find("a.source-link").AttrOr("href", ""))
}

func TestRender_Reveals(t *testing.T) {
	doc := render(t, content.Default, Options{})

	delays := []string{`"delay"`, `"delay":0.24`, `"delay":0.48`}
	doc.Find(".project-card").Slice(0, 3).Each(func(i int, s *goquery.Selection) {
		attr := s.AttrOr("data-reveal", "")
		if i == 0 {
			assert.NotContains(t, attr, delays[0])
			return
		}
		assert.Contains(t, attr, delays[i])
	})

	assert.Contains(t, doc.Find("footer").AttrOr("data-reveal", ""), `"start":"top 90%"`)
	assert.Contains(t, doc.Find(".hero-title").AttrOr("data-enter", ""), `"delay":0.2`)
	assert.Equal(t, 5, doc.Find("[data-enter]").Length())

	// grouped cards share the trigger of their grid; bars use their card
	for _, grid := range []string{"#about .highlight-grid", "#skills .card-grid", "#projects .card-grid"} {
		_, ok := doc.Find(grid).Attr("data-reveal-scope")
		assert.True(t, ok, grid)
	}
	doc.Find(".highlight-card, .skill-card, .project-card").Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, 1, s.Parent().Filter("[data-reveal-scope]").Length())
	})
	_, ok := doc.Find(".skill-card").First().Attr("data-reveal-scope")
	assert.True(t, ok)
}

func TestRender_StaticHidesServerForms(t *testing.T) {
	doc := render(t, content.Default, Options{})
	assert.Equal(t, 1, doc.Find("form.contact-form").Length())
	assert.Equal(t, 1, doc.Find(`a[href="/privacy"]`).Length())

	doc = render(t, content.Default, Options{Static: true})
	assert.Equal(t, 0, doc.Find("form.contact-form").Length())
	assert.Equal(t, 0, doc.Find(`a[href="/privacy"]`).Length())
	// email stays reachable
	assert.Equal(t, 1, doc.Find(`footer a[href^="mailto:"]`).Length())
}

func TestRender_Typewriter(t *testing.T) {
	doc := render(t, content.Default, Options{Stream: "/api/typewriter/stream"})

	tw := doc.Find(".typewriter")
	cfg := tw.AttrOr("data-typewriter", "")
	assert.Contains(t, cfg, `"roles":["MERN Stack Developer","Shopify App Developer","Full Stack Engineer","React Specialist"]`)
	assert.Contains(t, cfg, `"typeMs":100`)
	assert.Contains(t, cfg, `"holdMs":2000`)
	assert.Equal(t, "/api/typewriter/stream", tw.AttrOr("data-typewriter-stream", ""))

	doc = render(t, content.Default, Options{})
	_, ok := doc.Find(".typewriter").Attr("data-typewriter-stream")
	assert.False(t, ok)
}

func TestRender_Head(t *testing.T) {
	doc := render(t, content.Default, Options{})

	assert.Equal(t, content.Default.Site.Title, doc.Find("title").Text())
	assert.Equal(t, "@aashiqfarid", doc.Find(`meta[name="twitter:creator"]`).AttrOr("content", ""))
	assert.Equal(t, "https://aashiqfarid.dev", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
	assert.Contains(t, doc.Find(`meta[name="keywords"]`).AttrOr("content", ""), "MERN Stack Developer, Shopify Developer")
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"css/site.css", "js/motion.js", "js/typewriter.js", "js/theme.js", "images/favicon.svg"} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

func motionPercent(level int) string {
	return strconv.Itoa(level) + "%"
}
