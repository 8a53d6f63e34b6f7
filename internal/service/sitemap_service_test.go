package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

func TestBuildSitemap(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("ListSlugs").Return([]*domain.Post{
		{Slug: "first-post", Date: "2025-06-01"},
		{Slug: "older-post", Date: "", CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}, nil)

	svc := NewSitemapService(repo, "https://example.com")

	out, err := svc.BuildSitemap()
	assert.NoError(t, err)

	xml := string(out)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, xml, "<loc>https://example.com</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/blogs</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/blogs/first-post</loc>")
	assert.Contains(t, xml, "<lastmod>2025-06-01</lastmod>")
	// Date falls back to created_at when unset
	assert.Contains(t, xml, "<lastmod>2025-01-15</lastmod>")
}

func TestBuildRobots(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewSitemapService(repo, "https://example.com")

	robots := svc.BuildRobots()
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Disallow: /login")
	assert.Contains(t, robots, "Sitemap: https://example.com/sitemap.xml")
}
