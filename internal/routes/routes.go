package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/handler"
	"github.com/jaredsteven/portfolio-backend/internal/middleware"
	"github.com/jaredsteven/portfolio-backend/internal/service"
)

// Setup configures all routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	postHandler *handler.PostHandler,
	projectHandler *handler.ProjectHandler,
	publicHandler *handler.PublicHandler,
	authService service.AuthService,
) {
	// Public pages and crawl files
	router.GET("/blogs/:slug", publicHandler.BlogPage)
	router.GET("/sitemap.xml", publicHandler.Sitemap)
	router.GET("/robots.txt", publicHandler.Robots)

	// Session cookie resolution runs on every API request; unauthenticated
	// requests continue as anonymous
	api := router.Group("/api", middleware.CookieAuth(authService))

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/logout", authHandler.Logout)

	// Public read surface
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:slug", postHandler.GetPost)
	api.GET("/projects", projectHandler.ListProjects)

	// Admin surface, gated behind the session cookie
	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/posts", postHandler.ListAdminPosts)
		admin.POST("/posts", postHandler.SavePost)
		admin.DELETE("/posts/:id", postHandler.DeletePost)

		// Lives outside /posts because gin cannot route a static segment
		// next to the :id wildcard
		admin.POST("/preview", postHandler.PreviewPost)

		// Block operations against a stored post
		blocks := admin.Group("/posts/:id/blocks")
		{
			blocks.POST("", postHandler.AddBlock)
			blocks.POST("/reorder", postHandler.ReorderBlocks)
			blocks.PUT("/:index", postHandler.ReplaceBlock)
			blocks.DELETE("/:index", postHandler.RemoveBlock)
		}

		admin.GET("/projects", projectHandler.ListAdminProjects)
		admin.POST("/projects", projectHandler.SaveProject)
		admin.DELETE("/projects/:id", projectHandler.DeleteProject)
	}
}
