package models

import "time"

// Bid is a contractor's priced proposal against a project. A
// (ProjectID, ContractorID) pair identifies a bid uniquely.
type Bid struct {
	ProjectID        uint64    `gorm:"primarykey" json:"project_id"`
	ContractorID     uint64    `gorm:"primarykey" json:"contractor_id"`
	Price            float64   `gorm:"not null" json:"price"`
	PriceDescription string    `gorm:"type:varchar(255)" json:"price_description"`
	Hours            int       `gorm:"not null" json:"hours"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Project    Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Contractor Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
}
