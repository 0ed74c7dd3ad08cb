package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/dto"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/middleware"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/services"
	"github.com/probuild/bidding-api/internal/utils"
)

// ProjectHandler serves project routes. Create/list are customer-gated by
// the router; the assigned-projects view is contractor-gated.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project owned by the current customer.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Description string `json:"description" binding:"required"`
		StartDate   string `json:"start_date" binding:"required"`
		EndDate     string `json:"end_date" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		apierrors.BadRequest(c, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "end_date must be YYYY-MM-DD")
		return
	}

	project, err := h.projectService.CreateProject(userID, services.CreateProjectInput{
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		if errors.Is(err, services.ErrProjectDates) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns the current customer's own projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(userID, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// ListCustomerBids returns the bids placed against the current customer's
// projects, joined with the bidding contractor's name.
func (h *ProjectHandler) ListCustomerBids(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	rows, err := h.projectService.ListCustomerBids(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch bids")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bids": rows,
	})
}

// ListAssignedProjects returns the projects assigned to the current
// contractor, filtered by status (default "Not Done").
func (h *ProjectHandler) ListAssignedProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	status := models.ProjectStatus(c.DefaultQuery("status", string(models.ProjectStatusNotDone)))
	if status != models.ProjectStatusNotDone && status != models.ProjectStatusDone {
		apierrors.BadRequest(c, "status must be 'Not Done' or 'Done'")
		return
	}

	projects, err := h.projectService.ListAssignedProjects(userID, status)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
	})
}
