package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
)

// ProjectRepository is the storage interface for portfolio projects
type ProjectRepository interface {
	List() ([]*domain.Project, error)
	FindByID(id int64) (*domain.Project, error)
	Create(project *domain.Project) error
	Update(id int64, project *domain.Project) error
	Delete(id int64) error
	Count() (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a GORM-backed ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns all projects ordered by order_index ascending
func (r *projectRepository) List() ([]*domain.Project, error) {
	var projects []*domain.Project
	err := r.db.Order("order_index ASC, id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindByID(id int64) (*domain.Project, error) {
	var project domain.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(project *domain.Project) error {
	return r.db.Create(project).Error
}

func (r *projectRepository) Update(id int64, project *domain.Project) error {
	project.ID = id
	result := r.db.Model(&domain.Project{}).Where("id = ?", id).
		Select("title", "description", "image", "skills", "link", "link_text", "order_index").
		Updates(project)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(id int64) error {
	result := r.db.Delete(&domain.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrProjectNotFound
	}
	return nil
}

// Count is used to default order_index for new projects
func (r *projectRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&domain.Project{}).Count(&n).Error
	return n, err
}
