package models

// Supplier and Supplied back the supply reporting views only; nothing in
// the request flow mutates them.
type Supplier struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// Relations
	Supplied []Supplied `gorm:"foreignKey:SupplierID" json:"supplied,omitempty"`
}

// Supplied records an item a supplier provides; composite key
// (SupplierID, Item).
type Supplied struct {
	SupplierID uint64  `gorm:"primarykey" json:"supplier_id"`
	Item       string  `gorm:"primarykey;type:varchar(100)" json:"item"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	Price      float64 `gorm:"not null" json:"price"`

	// Relations
	Supplier Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
}
