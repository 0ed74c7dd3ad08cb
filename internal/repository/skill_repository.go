package repository

import (
	"github.com/probuild/bidding-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// FindSkillByID finds a skill by ID
func (r *GormSkillRepository) FindSkillByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// ListByContractor lists a contractor's skill associations with skill
// metadata preloaded
func (r *GormSkillRepository) ListByContractor(contractorID uint64) ([]models.ContractorSkill, error) {
	skills := []models.ContractorSkill{}
	if err := r.db.Preload("Skill").
		Where("contractor_id = ?", contractorID).
		Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

// FindContractorSkill finds an association by its composite key
func (r *GormSkillRepository) FindContractorSkill(contractorID, skillID uint64) (*models.ContractorSkill, error) {
	var cs models.ContractorSkill
	if err := r.db.Where("contractor_id = ? AND skill_id = ?", contractorID, skillID).
		First(&cs).Error; err != nil {
		return nil, err
	}
	return &cs, nil
}

// CreateContractorSkill creates a new association
func (r *GormSkillRepository) CreateContractorSkill(cs *models.ContractorSkill) error {
	return r.db.Create(cs).Error
}

// UpdateContractorSkill updates an existing association
func (r *GormSkillRepository) UpdateContractorSkill(cs *models.ContractorSkill) error {
	return r.db.Model(&models.ContractorSkill{}).
		Where("contractor_id = ? AND skill_id = ?", cs.ContractorID, cs.SkillID).
		Updates(map[string]interface{}{
			"years_experience": cs.YearsExperience,
			"certification":    cs.Certification,
		}).Error
}

// DeleteContractorSkill removes an association by composite key
func (r *GormSkillRepository) DeleteContractorSkill(contractorID, skillID uint64) (int64, error) {
	result := r.db.Where("contractor_id = ? AND skill_id = ?", contractorID, skillID).
		Delete(&models.ContractorSkill{})
	return result.RowsAffected, result.Error
}

// ListOffered joins skills with the contractors offering them
func (r *GormSkillRepository) ListOffered() ([]SkillOfferedRow, error) {
	rows := []SkillOfferedRow{}
	err := r.db.Model(&models.ContractorSkill{}).
		Select("skills.name AS skill_name, skills.description, contractors.name AS contractor_name, contractor_skills.years_experience, contractor_skills.certification").
		Joins("JOIN skills ON skills.id = contractor_skills.skill_id").
		Joins("JOIN contractors ON contractors.user_id = contractor_skills.contractor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
