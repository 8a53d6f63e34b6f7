package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/service"
)

// PublicHandler serves the non-API public surface: rendered article
// pages and the crawl files.
type PublicHandler struct {
	posts   service.PostService
	sitemap service.SitemapService
}

// NewPublicHandler creates a new PublicHandler
func NewPublicHandler(posts service.PostService, sitemap service.SitemapService) *PublicHandler {
	return &PublicHandler{posts: posts, sitemap: sitemap}
}

// BlogPage handles GET /blogs/:slug
// @Summary Server-rendered article HTML
func (h *PublicHandler) BlogPage(c *gin.Context) {
	slug := c.Param("slug")

	html, err := h.posts.RenderPostPage(c.Request.Context(), slug)
	if errors.Is(err, common.ErrPostNotFound) {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to render post", err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Sitemap handles GET /sitemap.xml
func (h *PublicHandler) Sitemap(c *gin.Context) {
	body, err := h.sitemap.BuildSitemap()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to build sitemap", err)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt
func (h *PublicHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.sitemap.BuildRobots()))
}

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Post not found</title>
</head>
<body>
  <main>
    <h1>Post not found</h1>
    <p>The post you are looking for does not exist. <a href="/blogs">Back to all posts</a></p>
  </main>
</body>
</html>
`
