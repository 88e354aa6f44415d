package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/middleware"
	"github.com/yigit/internhub/internal/pkg/helpers"
)

// InternshipController handles internship posting operations
type InternshipController struct {
	internshipService services.InternshipService
	logger            zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService services.InternshipService, logger zerolog.Logger) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		logger:            logger,
	}
}

// Create publishes a new internship posting
// @Summary Create internship
// @Tags internships
// @Accept json
// @Produce json
// @Param request body dto.CreateInternshipRequest true "Internship posting"
// @Success 201 {object} dto.APIResponse{data=models.Internship}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Security BearerAuth
// @Router /internships [post]
func (c *InternshipController) Create(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	internship, err := c.internshipService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("internshipID", internship.ID).Msg("Internship created")
	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: internship})
}

// List retrieves internship postings
// @Summary List internships
// @Description Lists internship postings, newest first, with optional mode/company/open filters
// @Tags internships
// @Produce json
// @Param mode query string false "Filter by mode" Enums(REMOTE, ONSITE, HYBRID)
// @Param company query string false "Filter by company"
// @Param open query bool false "Only open postings"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Security BearerAuth
// @Router /internships [get]
func (c *InternshipController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filter := repositories.InternshipFilter{
		Mode:     models.InternshipMode(ctx.Query("mode")),
		Company:  ctx.Query("company"),
		OpenOnly: ctx.Query("open") == "true",
	}

	internships, total, err := c.internshipService.List(ctx.Request.Context(), filter, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.PaginatedResponse{
		Items:      internships,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}})
}

// Get retrieves one internship posting
// @Summary Get internship by ID
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /internships/{id} [get]
func (c *InternshipController) Get(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")))
		return
	}

	internship, err := c.internshipService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: internship})
}

// Update applies a partial update to an internship posting
// @Summary Update internship
// @Tags internships
// @Accept json
// @Produce json
// @Param id path int true "Internship ID"
// @Param request body dto.UpdateInternshipRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Internship}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /internships/{id} [patch]
func (c *InternshipController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")))
		return
	}

	var req dto.UpdateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	internship, err := c.internshipService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: internship})
}

// Delete removes an internship posting
// @Summary Delete internship
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Internship not found"
// @Security BearerAuth
// @Router /internships/{id} [delete]
func (c *InternshipController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid internship ID")))
		return
	}

	if err := c.internshipService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Internship deleted"}})
}
