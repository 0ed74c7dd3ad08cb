package models

// Contractor is the contractor-side payload of a User.
type Contractor struct {
	UserID      uint64  `gorm:"primarykey" json:"user_id"`
	Name        string  `gorm:"type:varchar(100);not null" json:"name"`
	Address     string  `gorm:"type:varchar(255)" json:"address"`
	HourlyRate  float64 `gorm:"not null;default:0" json:"hourly_rate"`
	Phone       string  `gorm:"type:varchar(30)" json:"phone"`
	Description string  `gorm:"type:text" json:"description"`

	// Relations
	User   User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bids   []Bid             `gorm:"foreignKey:ContractorID" json:"bids,omitempty"`
	Skills []ContractorSkill `gorm:"foreignKey:ContractorID" json:"skills,omitempty"`
}
