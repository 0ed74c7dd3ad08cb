package models

type Skill struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// ContractorSkill associates a contractor with a skill they offer;
// composite key (ContractorID, SkillID).
type ContractorSkill struct {
	ContractorID    uint64 `gorm:"primarykey" json:"contractor_id"`
	SkillID         uint64 `gorm:"primarykey" json:"skill_id"`
	YearsExperience int    `gorm:"not null;default:0" json:"years_experience"`
	Certification   string `gorm:"type:varchar(100)" json:"certification"`

	// Relations
	Contractor Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Skill      Skill      `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
