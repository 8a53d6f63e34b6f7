package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

func TestAnchorID(t *testing.T) {
	assert.Equal(t, "getting-started", AnchorID("Getting Started"))
	assert.Equal(t, "getting-started", AnchorID("Getting  Started"))
	assert.Equal(t, "intro", AnchorID("Intro"))
	assert.Equal(t, "a-b-c", AnchorID("A B\tC"))
}

func TestRenderHeading(t *testing.T) {
	out := Block(domain.Block{ID: "1", Type: domain.BlockHeading, Content: "Getting Started", Level: 1}, nil)
	assert.Equal(t, `<h1 id="getting-started">Getting Started</h1>`, out)

	// Missing level falls back to 2
	out = Block(domain.Block{ID: "2", Type: domain.BlockHeading, Content: "Setup"}, nil)
	assert.Contains(t, out, "<h2 ")
}

func TestRenderParagraph_Verbatim(t *testing.T) {
	out := Block(domain.Block{ID: "1", Type: domain.BlockParagraph, Content: "<strong>bold</strong>"}, nil)
	assert.Equal(t, `<div class="prose"><strong>bold</strong></div>`, out)
}

func TestRenderCode_Escaped(t *testing.T) {
	out := Block(domain.Block{ID: "1", Type: domain.BlockCode, Content: `if x < 1 { fmt.Println("<hi>") }`}, nil)
	assert.NotContains(t, out, "<hi>")
	assert.Contains(t, out, "&lt;hi&gt;")
	assert.True(t, strings.HasPrefix(out, `<pre class="code-block"><code>`))
}

func TestRenderTOC_FromHeadings(t *testing.T) {
	blocks := domain.BlockList{
		{ID: "1", Type: domain.BlockHeading, Content: "One", Level: 1},
		{ID: "2", Type: domain.BlockParagraph, Content: "text"},
		{ID: "3", Type: domain.BlockHeading, Content: "Two", Level: 2},
		{ID: "4", Type: domain.BlockHeading, Content: "Three", Level: 3},
		{ID: "5", Type: domain.BlockHeading, Content: "Four", Level: 2},
		{ID: "6", Type: domain.BlockTOC},
	}

	out := Block(blocks[5], blocks)

	// Four links, in document order
	for _, anchor := range []string{"#one", "#two", "#three", "#four"} {
		assert.Contains(t, out, fmt.Sprintf(`href="%s"`, anchor))
	}
	assert.Less(t, strings.Index(out, "#one"), strings.Index(out, "#two"))
	assert.Less(t, strings.Index(out, "#two"), strings.Index(out, "#three"))
	assert.Less(t, strings.Index(out, "#three"), strings.Index(out, "#four"))

	// Indentation matches level: 1 -> ml-0, 2 -> ml-4, 3 -> ml-8
	assert.Contains(t, out, `<li class="ml-0"><a href="#one">`)
	assert.Contains(t, out, `<li class="ml-4"><a href="#two">`)
	assert.Contains(t, out, `<li class="ml-8"><a href="#three">`)
	assert.Contains(t, out, `<li class="ml-4"><a href="#four">`)
}

func TestRenderTOC_NoHeadings(t *testing.T) {
	blocks := domain.BlockList{
		{ID: "1", Type: domain.BlockParagraph, Content: "text"},
		{ID: "2", Type: domain.BlockTOC},
	}

	out := Block(blocks[1], blocks)
	assert.Contains(t, out, "No headings found in this post")
}

func TestRenderTOC_RecomputedAfterHeadingEdit(t *testing.T) {
	blocks := domain.BlockList{
		{ID: "1", Type: domain.BlockHeading, Content: "Old Title", Level: 1},
		{ID: "2", Type: domain.BlockTOC},
	}

	before := Block(blocks[1], blocks)
	assert.Contains(t, before, `href="#old-title"`)

	blocks[0].Content = "New Title"
	after := Block(blocks[1], blocks)
	assert.Contains(t, after, `href="#new-title"`)
	assert.NotContains(t, after, "old-title")
}

func TestRenderSponsored(t *testing.T) {
	block := domain.Block{
		ID:   "1",
		Type: domain.BlockSponsored,
		Sponsored: &domain.SponsoredData{
			Heading:    "Great Tool",
			Paragraph:  "Try it.",
			ImageURL:   "https://example.com/x.png",
			ButtonText: "Learn More",
			ButtonLink: "https://example.com",
		},
	}

	out := Block(block, nil)
	assert.Contains(t, out, "Sponsored")
	assert.Contains(t, out, "<h3>Great Tool</h3>")
	assert.Contains(t, out, `rel="noopener noreferrer sponsored"`)
	assert.Contains(t, out, `src="https://example.com/x.png"`)
}

func TestRenderSponsored_OmitsEmptyFields(t *testing.T) {
	block := domain.Block{
		ID:   "1",
		Type: domain.BlockSponsored,
		Sponsored: &domain.SponsoredData{
			Heading: "Only Heading",
		},
	}

	out := Block(block, nil)
	assert.Contains(t, out, "<h3>Only Heading</h3>")
	assert.NotContains(t, out, "<p>")
	assert.NotContains(t, out, "<a ")
	assert.NotContains(t, out, "<img ")

	// Nil payload still renders the labelled panel
	out = Block(domain.Block{ID: "2", Type: domain.BlockSponsored}, nil)
	assert.Contains(t, out, "sponsored-label")
}

func TestRenderScenario_IntroParagraphTOC(t *testing.T) {
	blocks := domain.BlockList{
		{ID: "1", Type: domain.BlockHeading, Content: "Intro", Level: 1},
		{ID: "2", Type: domain.BlockParagraph, Content: "hello"},
		{ID: "3", Type: domain.BlockTOC},
	}

	out := Blocks(blocks)
	assert.Contains(t, out, `<h1 id="intro">Intro</h1>`)
	assert.Contains(t, out, `<div class="prose">hello</div>`)
	assert.Contains(t, out, `<a href="#intro">Intro</a>`)

	// Exactly one toc link
	assert.Equal(t, 1, strings.Count(out, `href="#`))
}

func TestPage(t *testing.T) {
	post := &domain.Post{
		Title:       "My Post",
		Slug:        "my-post",
		Category:    "AI",
		Date:        "2025-06-01",
		ReadTime:    "5 min read",
		Description: "About things",
		Blocks: domain.BlockList{
			{ID: "1", Type: domain.BlockHeading, Content: "Intro", Level: 1},
		},
	}

	out, err := Page(post)
	assert.NoError(t, err)
	assert.Contains(t, out, "<title>My Post | Jared Steven | AI Engineer</title>")
	assert.Contains(t, out, `<h1 id="intro">Intro</h1>`)
	assert.Contains(t, out, "5 min read")
}
