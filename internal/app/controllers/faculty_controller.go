package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/middleware"
)

// UpdateFacultyRequest is the partial-update payload for a faculty profile
type UpdateFacultyRequest struct {
	Department        *string  `json:"department,omitempty"`
	Expertise         []string `json:"expertise,omitempty"`
	ResearchInterests []string `json:"researchInterests,omitempty"`
	MentoringCapacity *int     `json:"mentoringCapacity,omitempty" binding:"omitempty,gte=0"`
	IsAvailable       *bool    `json:"isAvailable,omitempty"`
}

// FacultyController handles mentor profile operations
type FacultyController struct {
	facultyService services.FacultyService
	logger         zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService, logger zerolog.Logger) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		logger:         logger,
	}
}

// GetMyProfile returns the calling mentor's profile
// @Summary Get own faculty profile
// @Description Returns the authenticated mentor's profile including assigned students
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile}
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Security BearerAuth
// @Router /faculty/me [get]
func (c *FacultyController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	faculty, err := c.facultyService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: faculty})
}

// UpdateMyProfile applies a partial update to the calling mentor's profile
// @Summary Update own faculty profile
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body controllers.UpdateFacultyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.FacultyProfile}
// @Failure 404 {object} dto.ErrorResponse "Faculty profile not found"
// @Security BearerAuth
// @Router /faculty/me [patch]
func (c *FacultyController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	faculty, err := c.facultyService.UpdateProfile(ctx.Request.Context(), userID, &services.UpdateFacultyInput{
		Department:        req.Department,
		Expertise:         req.Expertise,
		ResearchInterests: req.ResearchInterests,
		MentoringCapacity: req.MentoringCapacity,
		IsAvailable:       req.IsAvailable,
	})
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", userID).Msg("Failed to update faculty profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: faculty})
}

// ListFaculty lists all faculty profiles
// @Summary List faculty
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyProfile}
// @Security BearerAuth
// @Router /faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.ListFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: faculty})
}

// ListAssignedStudents lists the students mentored by a faculty
// @Summary List a mentor's assigned students
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty profile ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Security BearerAuth
// @Router /faculty/{id}/students [get]
func (c *FacultyController) ListAssignedStudents(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid faculty ID")))
		return
	}

	students, err := c.facultyService.ListAssignedStudents(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}
