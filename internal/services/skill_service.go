package services

import (
	"errors"
	"fmt"

	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSkillNotFound           = errors.New("skill not found")
	ErrContractorSkillNotFound = errors.New("contractor skill not found")
	ErrSkillAlreadyAttached    = errors.New("skill already attached to contractor")
)

// SkillService handles contractor skill business logic. Every operation is
// scoped to the contractor whose ID comes from the session, never from the
// request body.
type SkillService struct {
	skillRepo repository.SkillRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
	}
}

// ListSkills lists the contractor's skill associations with metadata.
func (s *SkillService) ListSkills(contractorID uint64) ([]models.ContractorSkill, error) {
	return s.skillRepo.ListByContractor(contractorID)
}

// SkillInput holds the mutable fields of a skill association.
type SkillInput struct {
	YearsExperience int
	Certification   string
}

// AttachSkill associates an existing skill with the contractor.
func (s *SkillService) AttachSkill(contractorID, skillID uint64, input SkillInput) (*models.ContractorSkill, error) {
	if _, err := s.skillRepo.FindSkillByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if _, err := s.skillRepo.FindContractorSkill(contractorID, skillID); err == nil {
		return nil, ErrSkillAlreadyAttached
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check contractor skill: %w", err)
	}

	cs := &models.ContractorSkill{
		ContractorID:    contractorID,
		SkillID:         skillID,
		YearsExperience: input.YearsExperience,
		Certification:   input.Certification,
	}

	if err := s.skillRepo.CreateContractorSkill(cs); err != nil {
		return nil, fmt.Errorf("failed to attach skill: %w", err)
	}

	return cs, nil
}

// UpdateSkill updates the contractor's own association by composite key.
func (s *SkillService) UpdateSkill(contractorID, skillID uint64, input SkillInput) (*models.ContractorSkill, error) {
	cs, err := s.skillRepo.FindContractorSkill(contractorID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractorSkillNotFound
		}
		return nil, fmt.Errorf("failed to find contractor skill: %w", err)
	}

	cs.YearsExperience = input.YearsExperience
	cs.Certification = input.Certification

	if err := s.skillRepo.UpdateContractorSkill(cs); err != nil {
		return nil, fmt.Errorf("failed to update contractor skill: %w", err)
	}

	return cs, nil
}

// DeleteSkill removes the contractor's own association by composite key.
func (s *SkillService) DeleteSkill(contractorID, skillID uint64) error {
	affected, err := s.skillRepo.DeleteContractorSkill(contractorID, skillID)
	if err != nil {
		return fmt.Errorf("failed to delete contractor skill: %w", err)
	}
	if affected == 0 {
		return ErrContractorSkillNotFound
	}
	return nil
}
