package services

import (
	"errors"
	"fmt"

	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidBid      = errors.New("bid price and hours must be positive")
)

// BidService handles bid business logic.
type BidService struct {
	bidRepo     repository.BidRepository
	projectRepo repository.ProjectRepository
}

// NewBidService creates a new BidService.
func NewBidService(bidRepo repository.BidRepository, projectRepo repository.ProjectRepository) *BidService {
	return &BidService{
		bidRepo:     bidRepo,
		projectRepo: projectRepo,
	}
}

// PlaceBidInput holds the fields of a bid submission.
type PlaceBidInput struct {
	ProjectID        uint64
	Price            float64
	PriceDescription string
	Hours            int
}

// PlaceBid creates or replaces the contractor's bid on a project. The
// (project, contractor) pair is the bid's identity, so re-bidding updates
// the existing row.
func (s *BidService) PlaceBid(contractorID uint64, input PlaceBidInput) (*models.Bid, error) {
	if input.Price <= 0 || input.Hours <= 0 {
		return nil, ErrInvalidBid
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	bid := &models.Bid{
		ProjectID:        input.ProjectID,
		ContractorID:     contractorID,
		Price:            input.Price,
		PriceDescription: input.PriceDescription,
		Hours:            input.Hours,
	}

	if err := s.bidRepo.Upsert(bid); err != nil {
		return nil, fmt.Errorf("failed to place bid: %w", err)
	}

	return bid, nil
}
