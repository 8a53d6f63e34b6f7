package service

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/jaredsteven/portfolio-backend/internal/repository"
)

// SitemapService builds the crawl surface: sitemap.xml enumerating all
// post slugs plus static routes, and robots.txt excluding the admin
// and login paths.
type SitemapService interface {
	BuildSitemap() ([]byte, error)
	BuildRobots() string
}

type sitemapService struct {
	postRepo repository.PostRepository
	baseURL  string
}

// NewSitemapService creates a new SitemapService
func NewSitemapService(postRepo repository.PostRepository, baseURL string) SitemapService {
	return &sitemapService{postRepo: postRepo, baseURL: baseURL}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// BuildSitemap renders the sitemap XML document
func (s *sitemapService) BuildSitemap() ([]byte, error) {
	posts, err := s.postRepo.ListSlugs()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")

	blogsLastMod := today
	if len(posts) > 0 {
		blogsLastMod = postLastMod(posts[0].Date, posts[0].CreatedAt, today)
	}

	urls := []sitemapURL{
		{Loc: s.baseURL, LastMod: today, ChangeFreq: "daily", Priority: "1.0"},
		{Loc: s.baseURL + "/blogs", LastMod: blogsLastMod, ChangeFreq: "daily", Priority: "0.8"},
		{Loc: s.baseURL + "/login", LastMod: today, ChangeFreq: "monthly", Priority: "0.3"},
	}

	for _, post := range posts {
		urls = append(urls, sitemapURL{
			Loc:        fmt.Sprintf("%s/blogs/%s", s.baseURL, post.Slug),
			LastMod:    postLastMod(post.Date, post.CreatedAt, today),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}

// BuildRobots renders robots.txt; admin and login stay uncrawled
func (s *sitemapService) BuildRobots() string {
	return fmt.Sprintf(`User-agent: *
Allow: /
Disallow: /admin/
Disallow: /login

Sitemap: %s/sitemap.xml
`, s.baseURL)
}

func postLastMod(date string, createdAt time.Time, fallback string) string {
	if date != "" {
		return date
	}
	if !createdAt.IsZero() {
		return createdAt.Format("2006-01-02")
	}
	return fallback
}
