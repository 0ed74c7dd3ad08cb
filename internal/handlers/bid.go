package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/dto"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/middleware"
	"github.com/probuild/bidding-api/internal/services"
)

// BidHandler serves the contractor bidding route.
type BidHandler struct {
	bidService *services.BidService
}

// NewBidHandler creates a new BidHandler.
func NewBidHandler(bidService *services.BidService) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// PlaceBid creates or replaces the current contractor's bid on a project.
func (h *BidHandler) PlaceBid(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type PlaceBidRequest struct {
		ProjectID        uint64  `json:"project_id" binding:"required"`
		Price            float64 `json:"price" binding:"required"`
		PriceDescription string  `json:"price_description"`
		Hours            int     `json:"hours" binding:"required"`
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	bid, err := h.bidService.PlaceBid(userID, services.PlaceBidInput{
		ProjectID:        req.ProjectID,
		Price:            req.Price,
		PriceDescription: req.PriceDescription,
		Hours:            req.Hours,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidBid):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to place bid")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBidDTO(*bid))
}
