package models

// Customer is the customer-side payload of a User. Customers own projects
// and review the bids placed against them.
type Customer struct {
	UserID uint64 `gorm:"primarykey" json:"user_id"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Projects []Project `gorm:"foreignKey:CustomerID" json:"projects,omitempty"`
}
