package repository

import (
	"github.com/probuild/bidding-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBidRepository is a GORM implementation of BidRepository
type GormBidRepository struct {
	db *gorm.DB
}

// NewBidRepository creates a new BidRepository
func NewBidRepository(db *gorm.DB) BidRepository {
	return &GormBidRepository{db: db}
}

// Upsert creates the bid or updates price fields when the composite key
// already exists
func (r *GormBidRepository) Upsert(bid *models.Bid) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "contractor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "price_description", "hours", "updated_at"}),
		}).
		Create(bid).Error
}

// FindByKey finds a bid by its composite key
func (r *GormBidRepository) FindByKey(projectID, contractorID uint64) (*models.Bid, error) {
	var bid models.Bid
	if err := r.db.Where("project_id = ? AND contractor_id = ?", projectID, contractorID).
		First(&bid).Error; err != nil {
		return nil, err
	}
	return &bid, nil
}
