package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaredsteven/portfolio-backend/internal/common"
	"github.com/jaredsteven/portfolio-backend/internal/domain"
	"github.com/jaredsteven/portfolio-backend/internal/repository"
	"github.com/jaredsteven/portfolio-backend/pkg/cache"
	"github.com/jaredsteven/portfolio-backend/pkg/logger"
)

// ProjectService business logic for portfolio projects
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	ListAll() ([]*domain.Project, error)
	Save(req *domain.SaveProjectRequest) (*domain.Project, error)
	Delete(id int64) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache cache.Service
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo repository.ProjectRepository, cacheService cache.Service) ProjectService {
	return &projectService{repo: repo, cache: cacheService}
}

// ListProjects returns projects ordered by order_index ascending
func (s *projectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	var cached []*domain.Project
	if err := s.cache.GetProjects(ctx, &cached); err == nil {
		return cached, nil
	}

	projects, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetProjects(ctx, projects); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("project list cache write failed")
	}
	return projects, nil
}

// ListAll returns every project for the admin editor
func (s *projectService) ListAll() ([]*domain.Project, error) {
	return s.repo.List()
}

// Save upserts one project. Title and description are required.
// A zero order_index on a new project defaults to the current project
// count, appending it to the display order.
func (s *projectService) Save(req *domain.SaveProjectRequest) (*domain.Project, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: please fill in title and description", common.ErrValidation)
	}

	project := req.ToProject()

	if req.ID != 0 {
		if err := s.repo.Update(req.ID, project); err != nil {
			return nil, err
		}
	} else {
		if project.OrderIndex == 0 {
			if n, err := s.repo.Count(); err == nil {
				project.OrderIndex = int(n)
			}
		}
		if err := s.repo.Create(project); err != nil {
			return nil, err
		}
	}

	s.invalidate()
	return project, nil
}

// Delete removes one project; confirmation is enforced at the handler
func (s *projectService) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *projectService) invalidate() {
	if err := s.cache.InvalidateProjects(context.Background()); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("project cache invalidation failed")
	}
}
