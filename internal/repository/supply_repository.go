package repository

import (
	"github.com/probuild/bidding-api/internal/models"
	"gorm.io/gorm"
)

// GormSupplyRepository is a GORM implementation of SupplyRepository
type GormSupplyRepository struct {
	db *gorm.DB
}

// NewSupplyRepository creates a new SupplyRepository
func NewSupplyRepository(db *gorm.DB) SupplyRepository {
	return &GormSupplyRepository{db: db}
}

// Stats computes min/max/avg quantity and price across all supplied rows
func (r *GormSupplyRepository) Stats() (*SupplyStats, error) {
	var stats SupplyStats
	err := r.db.Model(&models.Supplied{}).
		Select("MIN(quantity) AS min_quantity, MAX(quantity) AS max_quantity, AVG(quantity) AS avg_quantity, MIN(price) AS min_price, MAX(price) AS max_price, AVG(price) AS avg_price").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListFiltered lists supplied rows with quantity >= minQuantity and
// price < maxPrice
func (r *GormSupplyRepository) ListFiltered(minQuantity int, maxPrice float64) ([]models.Supplied, error) {
	rows := []models.Supplied{}
	if err := r.db.
		Where("quantity >= ? AND price < ?", minQuantity, maxPrice).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
