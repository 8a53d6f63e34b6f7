package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

// PostRepository is the storage interface for blog posts
type PostRepository interface {
	List() ([]*domain.Post, error)
	ListSlugs() ([]*domain.Post, error)
	FindBySlug(slug string) (*domain.Post, error)
	FindByID(id int64) (*domain.Post, error)
	Create(post *domain.Post) error
	Update(id int64, post *domain.Post) error
	Delete(id int64) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a GORM-backed PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// List returns all posts ordered by date descending
func (r *postRepository) List() ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Order("date DESC, id DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListSlugs returns slug and date columns only, for the sitemap
func (r *postRepository) ListSlugs() ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Select("slug", "date", "created_at").
		Order("date DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindBySlug fetches one post by its public URL identifier. Slugs are
// unique at the storage layer, so at most one row matches.
func (r *postRepository) FindBySlug(slug string) (*domain.Post, error) {
	var post domain.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindByID(id int64) (*domain.Post, error) {
	var post domain.Post
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Create(post *domain.Post) error {
	return translateSlugConflict(r.db.Create(post).Error)
}

// Update replaces the stored record wholesale, block list included
func (r *postRepository) Update(id int64, post *domain.Post) error {
	post.ID = id
	result := r.db.Model(&domain.Post{}).Where("id = ?", id).
		Select("title", "slug", "category", "description", "date", "read_time", "header_image", "blocks").
		Updates(post)
	if result.Error != nil {
		return translateSlugConflict(result.Error)
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

// translateSlugConflict maps unique-index violations on posts.slug to
// the domain error so handlers can answer 409
func translateSlugConflict(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrDuplicateSlug
	}
	// Postgres unique_violation surfaced as a plain error string
	if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "slug") {
		return common.ErrDuplicateSlug
	}
	return err
}
