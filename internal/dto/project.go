package dto

import (
	"time"

	"github.com/probuild/bidding-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID           uint64               `json:"id"`
	Description  string               `json:"description"`
	StartDate    time.Time            `json:"start_date"`
	EndDate      time.Time            `json:"end_date"`
	Status       models.ProjectStatus `json:"status"`
	CustomerID   uint64               `json:"customer_id"`
	ContractorID *uint64              `json:"contractor_id"`
	CreatedAt    time.Time            `json:"created_at"`
}

// ContractorSkillDTO represents a skill association in API responses
type ContractorSkillDTO struct {
	ContractorID    uint64 `json:"contractor_id"`
	SkillID         uint64 `json:"skill_id"`
	SkillName       string `json:"skill_name,omitempty"`
	Description     string `json:"description,omitempty"`
	YearsExperience int    `json:"years_experience"`
	Certification   string `json:"certification"`
}

// BidDTO represents a bid in API responses
type BidDTO struct {
	ProjectID        uint64  `json:"project_id"`
	ContractorID     uint64  `json:"contractor_id"`
	Price            float64 `json:"price"`
	PriceDescription string  `json:"price_description"`
	Hours            int     `json:"hours"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:           project.ID,
		Description:  project.Description,
		StartDate:    project.StartDate,
		EndDate:      project.EndDate,
		Status:       project.Status,
		CustomerID:   project.CustomerID,
		ContractorID: project.ContractorID,
		CreatedAt:    project.CreatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// ToContractorSkillDTO converts a ContractorSkill model to DTO
func ToContractorSkillDTO(cs models.ContractorSkill) ContractorSkillDTO {
	dto := ContractorSkillDTO{
		ContractorID:    cs.ContractorID,
		SkillID:         cs.SkillID,
		YearsExperience: cs.YearsExperience,
		Certification:   cs.Certification,
	}

	// Include skill metadata if preloaded
	if cs.Skill.ID != 0 {
		dto.SkillName = cs.Skill.Name
		dto.Description = cs.Skill.Description
	}

	return dto
}

// ToBidDTO converts a Bid model to BidDTO
func ToBidDTO(bid models.Bid) BidDTO {
	return BidDTO{
		ProjectID:        bid.ProjectID,
		ContractorID:     bid.ContractorID,
		Price:            bid.Price,
		PriceDescription: bid.PriceDescription,
		Hours:            bid.Hours,
	}
}
