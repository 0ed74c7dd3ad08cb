package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"github.com/probuild/bidding-api/internal/utils"
)

var (
	ErrProjectDates = errors.New("project end date must not be before its start date")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput holds the fields submitted for a new project.
type CreateProjectInput struct {
	Description string
	StartDate   time.Time
	EndDate     time.Time
}

// CreateProject creates a project owned by the given customer. The project
// ID is assigned by the store, never computed from a row count.
func (s *ProjectService) CreateProject(customerID uint64, input CreateProjectInput) (*models.Project, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrProjectDates
	}

	project := &models.Project{
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.ProjectStatusNotDone,
		CustomerID:  customerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects lists the customer's own projects.
func (s *ProjectService) ListProjects(customerID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	return s.projectRepo.ListByCustomer(customerID, params)
}

// ListCustomerBids returns the bids placed against the customer's projects
// together with the bidding contractor's name.
func (s *ProjectService) ListCustomerBids(customerID uint64) ([]repository.ProjectBidRow, error) {
	return s.projectRepo.ListCustomerBids(customerID)
}

// ListAssignedProjects lists the projects assigned to a contractor with the
// given status.
func (s *ProjectService) ListAssignedProjects(contractorID uint64, status models.ProjectStatus) ([]models.Project, error) {
	return s.projectRepo.ListAssignedToContractor(contractorID, status)
}
