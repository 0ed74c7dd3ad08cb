package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/dto"
	apierrors "github.com/probuild/bidding-api/internal/errors"
	"github.com/probuild/bidding-api/internal/middleware"
	"github.com/probuild/bidding-api/internal/services"
)

// SkillHandler serves the contractor skill routes. Ownership is implicit:
// the contractor ID always comes from the session, so a contractor can only
// touch their own associations.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// ListSkills returns the current contractor's skills with metadata.
func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skills, err := h.skillService.ListSkills(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}

	dtos := make([]dto.ContractorSkillDTO, len(skills))
	for i, cs := range skills {
		dtos[i] = dto.ToContractorSkillDTO(cs)
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": dtos,
	})
}

// AttachSkill associates an existing skill with the current contractor.
func (h *SkillHandler) AttachSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AttachSkillRequest struct {
		SkillID         uint64 `json:"skill_id" binding:"required"`
		YearsExperience int    `json:"years_experience" binding:"min=0"`
		Certification   string `json:"certification"`
	}

	var req AttachSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	cs, err := h.skillService.AttachSkill(userID, req.SkillID, services.SkillInput{
		YearsExperience: req.YearsExperience,
		Certification:   req.Certification,
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContractorSkillDTO(*cs))
}

// UpdateSkill updates the current contractor's association by composite key.
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skillID, err := strconv.ParseUint(c.Param("skill_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill ID")
		return
	}

	type UpdateSkillRequest struct {
		YearsExperience int    `json:"years_experience" binding:"min=0"`
		Certification   string `json:"certification"`
	}

	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	cs, err := h.skillService.UpdateSkill(userID, skillID, services.SkillInput{
		YearsExperience: req.YearsExperience,
		Certification:   req.Certification,
	})
	if err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContractorSkillDTO(*cs))
}

// DeleteSkill removes the current contractor's association by composite key.
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	skillID, err := strconv.ParseUint(c.Param("skill_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.skillService.DeleteSkill(userID, skillID); err != nil {
		respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill removed",
	})
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound),
		errors.Is(err, services.ErrContractorSkillNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSkillAlreadyAttached):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
