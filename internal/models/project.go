package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	ProjectStatusNotDone ProjectStatus = "Not Done"
	ProjectStatusDone    ProjectStatus = "Done"
)

type Project struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	StartDate    time.Time      `json:"start_date"`
	EndDate      time.Time      `json:"end_date"`
	Status       ProjectStatus  `gorm:"type:varchar(20);not null;default:'Not Done'" json:"status"`
	CustomerID   uint64         `gorm:"not null" json:"customer_id"`
	ContractorID *uint64        `json:"contractor_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Customer   Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Contractor *Contractor `gorm:"foreignKey:ContractorID" json:"contractor,omitempty"`
	Bids       []Bid       `gorm:"foreignKey:ProjectID" json:"bids,omitempty"`
}
