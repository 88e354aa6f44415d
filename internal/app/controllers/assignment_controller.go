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

// AssignmentController drives mentor-assignment proposal and confirmation
type AssignmentController struct {
	assignmentService services.AssignmentService
	logger            zerolog.Logger
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService, logger zerolog.Logger) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		logger:            logger,
	}
}

// GenerateProposal computes a mentor-assignment proposal
// @Summary Generate mentor-assignment proposal
// @Description Computes a studentID to facultyID mapping over the full population. Nothing is persisted; the proposal is reviewed and then confirmed separately.
// @Tags assignments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ProposalResponse}
// @Failure 422 {object} dto.ErrorResponse "No students or no faculty registered"
// @Security BearerAuth
// @Router /assignments/proposal [get]
func (c *AssignmentController) GenerateProposal(ctx *gin.Context) {
	proposal, err := c.assignmentService.GenerateProposal(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: proposal})
}

// ConfirmAssignments persists a reviewed proposal
// @Summary Confirm mentor assignments
// @Description Persists the reviewed studentID to facultyID mapping. Pairs are written independently; the response reports the outcome of each pair. Students absent from the mapping keep their current mentor.
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body dto.ConfirmAssignmentsRequest true "Reviewed assignments"
// @Success 200 {object} dto.APIResponse{data=dto.ConfirmAssignmentsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Security BearerAuth
// @Router /assignments/confirm [post]
func (c *AssignmentController) ConfirmAssignments(ctx *gin.Context) {
	var req dto.ConfirmAssignmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	assignments := make(map[int64]int64, len(req.Assignments))
	for key, facultyID := range req.Assignments {
		studentID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID in assignments")
			errorDetail = errorDetail.WithDetails("Assignment keys must be numeric student IDs, got " + key)
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		assignments[studentID] = facultyID
	}

	response, err := c.assignmentService.ConfirmAssignments(ctx.Request.Context(), assignments)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int("confirmed", response.Confirmed).Int("failed", response.Failed).
		Msg("Mentor assignments confirmed")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: response})
}
