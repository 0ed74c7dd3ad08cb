package repository

import (
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithRole creates a user and their role-specific row within a
	// single transaction. Exactly one of customer/contractor must be set.
	CreateWithRole(user *models.User, customer *models.Customer, contractor *models.Contractor) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists profile changes
	Update(user *models.User) error
}

// ProjectBidRow is one row of the project/bid/contractor join views.
type ProjectBidRow struct {
	ProjectID        uint64  `json:"project_id"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	PriceDescription string  `json:"price_description"`
	Hours            int     `json:"hours"`
	ContractorName   string  `json:"contractor_name"`
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project; the ID is assigned by the store
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// ListByCustomer lists a customer's projects with pagination
	ListByCustomer(customerID uint64, params utils.PaginationParams) ([]models.Project, int64, error)

	// ListCustomerBids joins the customer's projects with their bids and
	// the bidding contractors
	ListCustomerBids(customerID uint64) ([]ProjectBidRow, error)

	// ListAllBids joins every project that has at least one bid with the
	// bidding contractor, across all customers
	ListAllBids() ([]ProjectBidRow, error)

	// ListAssignedToContractor lists projects assigned to a contractor
	// with the given status
	ListAssignedToContractor(contractorID uint64, status models.ProjectStatus) ([]models.Project, error)
}

// BidRepository defines the interface for bid data access
type BidRepository interface {
	// Upsert creates the bid or updates it when the (project, contractor)
	// key already exists
	Upsert(bid *models.Bid) error

	// FindByKey finds a bid by its composite key
	FindByKey(projectID, contractorID uint64) (*models.Bid, error)
}

// SkillOfferedRow is one row of the skills-offered join view.
type SkillOfferedRow struct {
	SkillName       string `json:"skill_name"`
	Description     string `json:"description"`
	ContractorName  string `json:"contractor_name"`
	YearsExperience int    `json:"years_experience"`
	Certification   string `json:"certification"`
}

// SkillRepository defines the interface for skill data access
type SkillRepository interface {
	// FindSkillByID finds a skill by ID
	FindSkillByID(id uint64) (*models.Skill, error)

	// ListByContractor lists a contractor's skill associations with the
	// skill metadata preloaded
	ListByContractor(contractorID uint64) ([]models.ContractorSkill, error)

	// FindContractorSkill finds an association by its composite key
	FindContractorSkill(contractorID, skillID uint64) (*models.ContractorSkill, error)

	// CreateContractorSkill creates a new association
	CreateContractorSkill(cs *models.ContractorSkill) error

	// UpdateContractorSkill updates an existing association
	UpdateContractorSkill(cs *models.ContractorSkill) error

	// DeleteContractorSkill removes an association by composite key and
	// reports how many rows were removed
	DeleteContractorSkill(contractorID, skillID uint64) (int64, error)

	// ListOffered joins skills with the contractors offering them
	ListOffered() ([]SkillOfferedRow, error)
}

// SupplyStats holds aggregate statistics over the supplied records.
type SupplyStats struct {
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity"`
	AvgQuantity float64 `json:"avg_quantity"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	AvgPrice    float64 `json:"avg_price"`
}

// SupplyRepository defines the interface for supply reporting
type SupplyRepository interface {
	// Stats computes min/max/avg quantity and price across all rows
	Stats() (*SupplyStats, error)

	// ListFiltered lists supplied rows with quantity >= minQuantity and
	// price < maxPrice
	ListFiltered(minQuantity int, maxPrice float64) ([]models.Supplied, error)
}
