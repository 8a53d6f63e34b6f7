package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
	"github.com/jaredsteven/portfolio-backend/internal/service"
	"github.com/jaredsteven/portfolio-backend/pkg/ginutil"
)

// PostHandler handles blog post requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts handles GET /api/posts
// @Summary Public post list, newest first, without block bodies
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.service.ListPosts(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch posts", err)
		return
	}

	common.SuccessResponse(c, posts, &common.Meta{Total: int64(len(posts))})
}

// GetPost handles GET /api/posts/:slug
// @Summary One post with its full block sequence
func (h *PostHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.service.GetPostBySlug(c.Request.Context(), slug)
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, 404, "Post not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch post", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// ListAdminPosts handles GET /api/admin/posts
// @Summary Every post with blocks, for the editor's post list
func (h *PostHandler) ListAdminPosts(c *gin.Context) {
	posts, err := h.service.ListAll()
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch posts", err)
		return
	}

	common.SuccessResponse(c, posts, &common.Meta{Total: int64(len(posts))})
}

// SavePost handles POST /api/admin/posts
// @Summary Create or replace one post; id 0 inserts, otherwise updates wholesale
func (h *PostHandler) SavePost(c *gin.Context) {
	var req domain.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.service.Save(&req)
	if errors.Is(err, common.ErrValidation) {
		common.ErrorResponse(c, 400, err.Error(), err)
		return
	}
	if errors.Is(err, common.ErrDuplicateSlug) {
		common.ErrorResponse(c, 409, "A post with this slug already exists", err)
		return
	}
	if errors.Is(err, common.ErrPostNotFound) {
		common.ErrorResponse(c, 404, "Post not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to save post", err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, common.APIResponse{Data: post})
}

// DeletePost handles DELETE /api/admin/posts/:id
// @Summary Delete one post; requires confirm=true
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	// The destructive path needs an explicit opt-in
	if c.Query("confirm") != "true" {
		common.ErrorResponse(c, 400, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrPostNotFound) {
			common.ErrorResponse(c, 404, "Post not found", err)
			return
		}
		common.ErrorResponse(c, 500, "Failed to delete post", err)
		return
	}

	common.SuccessResponse(c, gin.H{"message": "Post deleted"}, nil)
}

// PreviewPost handles POST /api/admin/preview
// @Summary Render a draft's blocks to HTML without persisting
func (h *PostHandler) PreviewPost(c *gin.Context) {
	var req domain.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	common.SuccessResponse(c, gin.H{"html": h.service.Preview(&req)}, nil)
}

// AddBlockRequest payload for appending a block
type AddBlockRequest struct {
	Type domain.BlockType `json:"type" binding:"required"`
}

// AddBlock handles POST /api/admin/posts/:id/blocks
// @Summary Append a fresh empty block of the given kind
func (h *PostHandler) AddBlock(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	var req AddBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.service.AddBlock(id, req.Type)
	if err != nil {
		h.blockOpError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// ReplaceBlock handles PUT /api/admin/posts/:id/blocks/:index
// @Summary Replace the block at a position, keeping its id
func (h *PostHandler) ReplaceBlock(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}
	index, err := ginutil.ParamInt(c, "index")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid block index", err)
		return
	}

	var block domain.Block
	if err := c.ShouldBindJSON(&block); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.service.ReplaceBlock(id, index, block)
	if err != nil {
		h.blockOpError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// RemoveBlock handles DELETE /api/admin/posts/:id/blocks/:index
func (h *PostHandler) RemoveBlock(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}
	index, err := ginutil.ParamInt(c, "index")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid block index", err)
		return
	}

	post, err := h.service.RemoveBlock(id, index)
	if err != nil {
		h.blockOpError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// ReorderRequest payload for moving a block within the sequence
type ReorderRequest struct {
	FromID string `json:"from_id" binding:"required"`
	ToID   string `json:"to_id" binding:"required"`
}

// ReorderBlocks handles POST /api/admin/posts/:id/blocks/reorder
// @Summary Move the from_id block to the to_id block's position
func (h *PostHandler) ReorderBlocks(c *gin.Context) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid post ID", err)
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	post, err := h.service.ReorderBlocks(id, req.FromID, req.ToID)
	if err != nil {
		h.blockOpError(c, err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// blockOpError maps block operation failures to HTTP statuses
func (h *PostHandler) blockOpError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrPostNotFound):
		common.ErrorResponse(c, 404, "Post not found", err)
	case errors.Is(err, common.ErrBlockNotFound):
		common.ErrorResponse(c, 404, "Block index out of range", err)
	case errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, 400, err.Error(), err)
	default:
		common.ErrorResponse(c, 500, "Failed to update blocks", err)
	}
}
