package repository

import (
	"github.com/probuild/bidding-api/internal/database"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByCustomer lists a customer's projects with pagination
func (r *GormProjectRepository) ListByCustomer(customerID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).Where("customer_id = ?", customerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("projects.created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ListCustomerBids joins the customer's projects with their bids and the
// bidding contractors
func (r *GormProjectRepository) ListCustomerBids(customerID uint64) ([]ProjectBidRow, error) {
	rows := []ProjectBidRow{}
	err := r.db.Model(&models.Bid{}).
		Select("projects.id AS project_id, projects.description, bids.price, bids.price_description, bids.hours, contractors.name AS contractor_name").
		Joins("JOIN projects ON projects.id = bids.project_id").
		Joins("JOIN contractors ON contractors.user_id = bids.contractor_id").
		Where("projects.customer_id = ?", customerID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAllBids joins every project that has at least one bid with the
// bidding contractor, across all customers
func (r *GormProjectRepository) ListAllBids() ([]ProjectBidRow, error) {
	rows := []ProjectBidRow{}
	err := r.db.Model(&models.Bid{}).
		Select("projects.id AS project_id, projects.description, bids.price, bids.price_description, bids.hours, contractors.name AS contractor_name").
		Joins("JOIN projects ON projects.id = bids.project_id").
		Joins("JOIN contractors ON contractors.user_id = bids.contractor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAssignedToContractor lists projects assigned to a contractor with the
// given status
func (r *GormProjectRepository) ListAssignedToContractor(contractorID uint64, status models.ProjectStatus) ([]models.Project, error) {
	projects := []models.Project{}
	if err := r.db.
		Where("contractor_id = ? AND status = ?", contractorID, status).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
