// Package render turns a post's block sequence into display markup for
// the public blog page. Rendering is a pure function of the block list:
// nothing here mutates state or touches the network.
package render

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// AnchorID derives the anchor identifier for a heading: lower-cased,
// whitespace runs collapsed to single hyphens. Deterministic, so TOC
// links and heading ids always agree.
func AnchorID(text string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(text), "-")
}

// Blocks renders the whole block sequence in order
func Blocks(blocks domain.BlockList) string {
	var sb strings.Builder
	for i := range blocks {
		sb.WriteString(Block(blocks[i], blocks))
	}
	return sb.String()
}

// Block renders a single block. The full sequence is passed alongside
// because toc output is derived from the current heading blocks on
// every render, never stored.
func Block(block domain.Block, all domain.BlockList) string {
	switch block.Type {
	case domain.BlockHeading:
		return renderHeading(block)
	case domain.BlockParagraph:
		// Stored content is admin-authored markup; rendered verbatim
		return fmt.Sprintf(`<div class="prose">%s</div>`, block.Content)
	case domain.BlockImage:
		return fmt.Sprintf(
			`<figure class="post-image"><img src="%s" alt="Blog content" loading="lazy" onerror="this.classList.add('img-error')"></figure>`,
			html.EscapeString(block.Content))
	case domain.BlockCode:
		return fmt.Sprintf(`<pre class="code-block"><code>%s</code></pre>`, html.EscapeString(block.Content))
	case domain.BlockQuote:
		return fmt.Sprintf(`<blockquote class="prose">%s</blockquote>`, block.Content)
	case domain.BlockKeyTakeaways:
		return fmt.Sprintf(
			`<aside class="key-takeaways"><h2>Key Takeaways</h2><div class="prose">%s</div></aside>`,
			block.Content)
	case domain.BlockTOC:
		return renderTOC(all)
	case domain.BlockSponsored:
		return renderSponsored(block)
	}
	return ""
}

func renderHeading(block domain.Block) string {
	level := block.Level
	if level < 1 || level > 3 {
		level = 2
	}
	return fmt.Sprintf(`<h%d id="%s">%s</h%d>`,
		level, AnchorID(block.Content), html.EscapeString(block.Content), level)
}

// renderTOC scans the full sequence for heading blocks in document
// order and links to each derived anchor, indented by level.
func renderTOC(all domain.BlockList) string {
	var headings []domain.Block
	for _, b := range all {
		if b.Type == domain.BlockHeading {
			headings = append(headings, b)
		}
	}

	var sb strings.Builder
	sb.WriteString(`<nav class="toc"><h2>Table of Contents</h2>`)
	if len(headings) == 0 {
		sb.WriteString(`<p class="toc-empty">No headings found in this post</p>`)
	} else {
		sb.WriteString(`<ul>`)
		for _, h := range headings {
			sb.WriteString(fmt.Sprintf(`<li class="%s"><a href="#%s">%s</a></li>`,
				tocIndentClass(h.Level), AnchorID(h.Content), html.EscapeString(h.Content)))
		}
		sb.WriteString(`</ul>`)
	}
	sb.WriteString(`</nav>`)
	return sb.String()
}

func tocIndentClass(level int) string {
	switch level {
	case 1:
		return "ml-0"
	case 3:
		return "ml-8"
	default:
		return "ml-4"
	}
}

// renderSponsored emits the sponsored panel, omitting any sub-element
// whose source field is empty. The outbound link declares a sponsored
// relationship.
func renderSponsored(block domain.Block) string {
	data := block.Sponsored
	if data == nil {
		data = &domain.SponsoredData{}
	}

	var sb strings.Builder
	sb.WriteString(`<aside class="sponsored"><span class="sponsored-label">Sponsored</span>`)
	if data.Heading != "" {
		sb.WriteString(fmt.Sprintf(`<h3>%s</h3>`, html.EscapeString(data.Heading)))
	}
	if data.Paragraph != "" {
		sb.WriteString(fmt.Sprintf(`<p>%s</p>`, html.EscapeString(data.Paragraph)))
	}
	if data.ButtonText != "" && data.ButtonLink != "" {
		sb.WriteString(fmt.Sprintf(
			`<a href="%s" target="_blank" rel="noopener noreferrer sponsored">%s</a>`,
			html.EscapeString(data.ButtonLink), html.EscapeString(data.ButtonText)))
	}
	if data.ImageURL != "" {
		sb.WriteString(fmt.Sprintf(`<img src="%s" alt="%s" loading="lazy">`,
			html.EscapeString(data.ImageURL), html.EscapeString(data.Heading)))
	}
	sb.WriteString(`</aside>`)
	return sb.String()
}

var pageTemplate = template.Must(template.New("post").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} | Jared Steven | AI Engineer</title>
<meta name="description" content="{{.Description}}">
<link rel="stylesheet" href="/static/blog.css">
</head>
<body>
<main class="post">
<header class="post-header">
{{if .HeaderImage}}<img class="post-hero" src="{{.HeaderImage}}" alt="{{.Title}}">{{end}}
<p class="post-meta">{{.Category}} &middot; {{.Date}} &middot; {{.ReadTime}}</p>
<h1>{{.Title}}</h1>
</header>
<article>{{.Article}}</article>
</main>
</body>
</html>
`))

type pageData struct {
	Title       string
	Description string
	Category    string
	Date        string
	ReadTime    string
	HeaderImage string
	Article     template.HTML
}

// Page renders the full public article page for a post
func Page(post *domain.Post) (string, error) {
	var sb strings.Builder
	err := pageTemplate.Execute(&sb, pageData{
		Title:       post.Title,
		Description: post.Description,
		Category:    post.Category,
		Date:        post.Date,
		ReadTime:    post.ReadTime,
		HeaderImage: post.HeaderImage,
		Article:     template.HTML(Blocks(post.Blocks)),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
