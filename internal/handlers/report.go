package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/repository"
)

// Default thresholds for the filtered supply view.
const (
	defaultMinQuantity = 100
	defaultMaxPrice    = 50.0
)

// ReportHandler serves the read-only reporting views. All of them are open
// to any authenticated role.
type ReportHandler struct {
	projectRepo repository.ProjectRepository
	skillRepo   repository.SkillRepository
	supplyRepo  repository.SupplyRepository
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(projectRepo repository.ProjectRepository, skillRepo repository.SkillRepository, supplyRepo repository.SupplyRepository) *ReportHandler {
	return &ReportHandler{
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		supplyRepo:  supplyRepo,
	}
}

// ListAllBids returns every project with at least one bid joined to the
// bidding contractor. Unlike the sibling views this one is not scoped to
// the current actor; whether it should be is an open product question.
func (h *ReportHandler) ListAllBids(c *gin.Context) {
	rows, err := h.projectRepo.ListAllBids()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch bids")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bids": rows,
	})
}

// ListSkillsOffered returns all skills joined to the contractors offering
// them.
func (h *ReportHandler) ListSkillsOffered(c *gin.Context) {
	rows, err := h.skillRepo.ListOffered()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": rows,
	})
}

// SupplyStats returns min/max/avg quantity and price over all supplied
// records.
func (h *ReportHandler) SupplyStats(c *gin.Context) {
	stats, err := h.supplyRepo.Stats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute supply statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListSupplies returns supplied records with quantity >= min_quantity and
// price < max_price.
func (h *ReportHandler) ListSupplies(c *gin.Context) {
	minQuantity, err := strconv.Atoi(c.DefaultQuery("min_quantity", strconv.Itoa(defaultMinQuantity)))
	if err != nil {
		apierrors.BadRequest(c, "Invalid min_quantity")
		return
	}

	maxPrice, err := strconv.ParseFloat(c.DefaultQuery("max_price", strconv.FormatFloat(defaultMaxPrice, 'f', -1, 64)), 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid max_price")
		return
	}

	rows, err := h.supplyRepo.ListFiltered(minQuantity, maxPrice)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch supplies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"supplies": rows,
	})
}
