package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/services"
	"github.com/yigit/internhub/internal/middleware"
)

// ReportController serves program statistics and narrative reports
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// GetOverviewStats returns the aggregate dashboard statistics
// @Summary Program overview statistics
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.OverviewStats}
// @Security BearerAuth
// @Router /reports/overview [get]
func (c *ReportController) GetOverviewStats(ctx *gin.Context) {
	stats, err := c.reportService.GetOverviewStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats})
}

// GenerateNarrativeReport renders the statistics into a narrative report
// @Summary Generate narrative report
// @Description Produces a free-text report from the current statistics using the external generative-text service
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NarrativeReportResponse}
// @Failure 502 {object} dto.ErrorResponse "Generative-text service unavailable"
// @Security BearerAuth
// @Router /reports/narrative [get]
func (c *ReportController) GenerateNarrativeReport(ctx *gin.Context) {
	report, err := c.reportService.GenerateNarrativeReport(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to generate narrative report")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: report})
}
