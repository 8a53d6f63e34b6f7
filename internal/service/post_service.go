package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
	"github.com/jaredsteven/portfolio-backend/internal/editor"
	"github.com/jaredsteven/portfolio-backend/internal/render"
	"github.com/jaredsteven/portfolio-backend/internal/repository"
	"github.com/jaredsteven/portfolio-backend/pkg/cache"
	"github.com/jaredsteven/portfolio-backend/pkg/logger"
)

// PostService business logic for blog posts
type PostService interface {
	// Public read surface
	ListPosts(ctx context.Context) ([]*domain.PostListItem, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	RenderPostPage(ctx context.Context, slug string) (string, error)
	ListSlugs() ([]*domain.Post, error)

	// Admin editor
	ListAll() ([]*domain.Post, error)
	Save(req *domain.SavePostRequest) (*domain.Post, error)
	Delete(id int64) error
	Preview(req *domain.SavePostRequest) string

	// Block operations against a stored post
	AddBlock(postID int64, kind domain.BlockType) (*domain.Post, error)
	ReplaceBlock(postID int64, index int, block domain.Block) (*domain.Post, error)
	RemoveBlock(postID int64, index int) (*domain.Post, error)
	ReorderBlocks(postID int64, fromID, toID string) (*domain.Post, error)
}

type postService struct {
	repo  repository.PostRepository
	cache cache.Service
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, cacheService cache.Service) PostService {
	return &postService{repo: repo, cache: cacheService}
}

// ListPosts returns published posts ordered by date descending
func (s *postService) ListPosts(ctx context.Context) ([]*domain.PostListItem, error) {
	var cached []*domain.PostListItem
	if err := s.cache.GetPosts(ctx, &cached); err == nil {
		return cached, nil
	}

	posts, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]*domain.PostListItem, len(posts))
	for i, post := range posts {
		items[i] = post.ToListItem()
	}

	if err := s.cache.SetPosts(ctx, items); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("post list cache write failed")
	}
	return items, nil
}

// GetPostBySlug fetches one post by its public identifier
func (s *postService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var cached domain.Post
	if err := s.cache.GetPost(ctx, slug, &cached); err == nil {
		return &cached, nil
	}

	post, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPost(ctx, slug, post); err != nil {
		logger.GetLogger().Warn().Err(err).Str("slug", slug).Msg("post cache write failed")
	}
	return post, nil
}

// RenderPostPage produces the public article HTML for a slug
func (s *postService) RenderPostPage(ctx context.Context, slug string) (string, error) {
	post, err := s.GetPostBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return render.Page(post)
}

// ListSlugs returns slug/date pairs for the sitemap
func (s *postService) ListSlugs() ([]*domain.Post, error) {
	return s.repo.ListSlugs()
}

// ListAll returns every post with its full block sequence, for the
// admin editor's post list
func (s *postService) ListAll() ([]*domain.Post, error) {
	return s.repo.List()
}

// Save upserts one post: a known identity replaces the stored record
// wholesale, otherwise a new record is inserted. Title and slug are
// required; nothing is written when validation fails.
func (s *postService) Save(req *domain.SavePostRequest) (*domain.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		return nil, fmt.Errorf("%w: please fill in title and slug", common.ErrValidation)
	}

	post := req.ToPost()

	// Draft defaults when the editor leaves metadata blank
	if strings.TrimSpace(post.Date) == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	if strings.TrimSpace(post.ReadTime) == "" {
		post.ReadTime = "5 min read"
	}

	if req.ID != 0 {
		if err := s.repo.Update(req.ID, post); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.Create(post); err != nil {
			return nil, err
		}
	}

	s.invalidate(post.Slug)
	return post, nil
}

// Delete removes one post. The interactive confirmation gate lives at
// the handler boundary.
func (s *postService) Delete(id int64) error {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidate(post.Slug)
	return nil
}

// Preview renders a draft document without persisting anything
func (s *postService) Preview(req *domain.SavePostRequest) string {
	return render.Blocks(req.Blocks)
}

// AddBlock appends a fresh empty block of the given kind to a stored
// post's sequence
func (s *postService) AddBlock(postID int64, kind domain.BlockType) (*domain.Post, error) {
	if !domain.ValidBlockType(kind) {
		return nil, fmt.Errorf("%w: unknown block type %q", common.ErrInvalidInput, kind)
	}
	return s.mutateBlocks(postID, func(blocks domain.BlockList) (domain.BlockList, error) {
		out, _ := editor.Append(blocks, kind)
		return out, nil
	})
}

// ReplaceBlock replaces the block at index, preserving its id
func (s *postService) ReplaceBlock(postID int64, index int, block domain.Block) (*domain.Post, error) {
	return s.mutateBlocks(postID, func(blocks domain.BlockList) (domain.BlockList, error) {
		return editor.ReplaceAt(blocks, index, block)
	})
}

// RemoveBlock deletes the block at index
func (s *postService) RemoveBlock(postID int64, index int) (*domain.Post, error) {
	return s.mutateBlocks(postID, func(blocks domain.BlockList) (domain.BlockList, error) {
		return editor.RemoveAt(blocks, index)
	})
}

// ReorderBlocks moves the fromID block to the toID block's position
func (s *postService) ReorderBlocks(postID int64, fromID, toID string) (*domain.Post, error) {
	return s.mutateBlocks(postID, func(blocks domain.BlockList) (domain.BlockList, error) {
		return editor.Reorder(blocks, fromID, toID), nil
	})
}

// mutateBlocks loads a post, applies one editor operation to its block
// sequence and saves the whole record back
func (s *postService) mutateBlocks(postID int64, op func(domain.BlockList) (domain.BlockList, error)) (*domain.Post, error) {
	post, err := s.repo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	blocks, err := op(post.Blocks)
	if err != nil {
		return nil, err
	}
	post.Blocks = blocks

	if err := s.repo.Update(postID, post); err != nil {
		return nil, err
	}

	s.invalidate(post.Slug)
	return post, nil
}

// invalidate drops cached entries touched by an admin write. Cache
// failures never affect the outcome of the write itself.
func (s *postService) invalidate(slug string) {
	if err := s.cache.InvalidatePosts(context.Background(), slug); err != nil {
		logger.GetLogger().Warn().Err(err).Str("slug", slug).Msg("post cache invalidation failed")
	}
}
