package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/middleware"
)

// StudentController handles student profile and application operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetMyProfile returns the calling student's profile
// @Summary Get own student profile
// @Description Returns the profile of the authenticated student, including applications
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Security BearerAuth
// @Router /students/me [get]
func (c *StudentController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	student, err := c.studentService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// UpdateMyProfile applies a partial update to the calling student's profile
// @Summary Update own student profile
// @Description Applies a partial update; the assigned mentor is notified of detected changes
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 400 {object} dto.ErrorResponse "Empty or invalid update"
// @Failure 404 {object} dto.ErrorResponse "Student profile not found"
// @Security BearerAuth
// @Router /students/me [patch]
func (c *StudentController) UpdateMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	updated, err := c.studentService.UpdateProfile(ctx.Request.Context(), student.ID, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("studentID", student.ID).Msg("Failed to update student profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated})
}

// ListStudents lists all student profiles
// @Summary List students
// @Description Lists all student profiles. Restricted to admin and management roles.
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Security BearerAuth
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: students})
}

// GetStudent returns one student profile by ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student profile ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")))
		return
	}

	student, err := c.studentService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// Apply records a new internship application for the calling student
// @Summary Apply to an internship
// @Description Appends a PENDING application; applications cannot be withdrawn
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.ApplyRequest true "Internship to apply to"
// @Success 201 {object} dto.APIResponse{data=models.Application}
// @Failure 409 {object} dto.ErrorResponse "Already applied or internship closed"
// @Security BearerAuth
// @Router /students/me/applications [post]
func (c *StudentController) Apply(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	application, err := c.studentService.Apply(ctx.Request.Context(), student.ID, req.InternshipID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: application})
}

// ListMyApplications lists the calling student's applications
// @Summary List own applications
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Application}
// @Security BearerAuth
// @Router /students/me/applications [get]
func (c *StudentController) ListMyApplications(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	student, err := c.studentService.GetProfileByUserID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applications, err := c.studentService.ListApplications(ctx.Request.Context(), student.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: applications})
}

// UpdateApplicationStatus transitions one application's status
// @Summary Update application status
// @Description Sets an application's status. The student's mentor is notified of the change.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student profile ID"
// @Param internshipId path int true "Internship ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Security BearerAuth
// @Router /students/{id}/applications/{internshipId}/status [patch]
func (c *StudentController) UpdateApplicationStatus(ctx *gin.Context) {
	studentID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")))
		return
	}
	internshipID, err := strconv.ParseInt(ctx.Param("internshipId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")))
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	err = c.studentService.UpdateApplicationStatus(ctx.Request.Context(), studentID, internshipID,
		models.ApplicationStatus(req.Status))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Application status updated"}})
}
