package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yigit/internhub/internal/app/models/dto"
	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/pkg/llm"
	"github.com/yigit/internhub/internal/pkg/logger"
)

// ReportService aggregates program statistics and renders them into a
// narrative report via the external generative-text service
type ReportService interface {
	GetOverviewStats(ctx context.Context) (*dto.OverviewStats, error)
	GenerateNarrativeReport(ctx context.Context) (*dto.NarrativeReportResponse, error)
}

type reportService struct {
	stats *repositories.StatsRepository
	llm   llm.Client
}

// NewReportService creates a new ReportService
func NewReportService(stats *repositories.StatsRepository, client llm.Client) ReportService {
	return &reportService{stats: stats, llm: client}
}

// GetOverviewStats computes the dashboard aggregates
func (s *reportService) GetOverviewStats(ctx context.Context) (*dto.OverviewStats, error) {
	students, err := s.stats.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	mentors, err := s.stats.CountFaculty(ctx)
	if err != nil {
		return nil, err
	}
	viewers, err := s.stats.CountViewers(ctx)
	if err != nil {
		return nil, err
	}
	open, closed, err := s.stats.CountInternships(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.stats.ApplicationsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	byCompany, err := s.stats.ApplicationsByCompany(ctx)
	if err != nil {
		return nil, err
	}
	byMode, err := s.stats.ApplicationsByMode(ctx)
	if err != nil {
		return nil, err
	}
	bySDG, err := s.stats.InternshipsBySDGGoal(ctx)
	if err != nil {
		return nil, err
	}
	bySkill, err := s.stats.StudentsBySkill(ctx)
	if err != nil {
		return nil, err
	}
	byDepartment, err := s.stats.StudentsByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.OverviewStats{
		Students:             students,
		Mentors:              mentors,
		Viewers:              viewers,
		OpenInternships:      open,
		ClosedInternships:    closed,
		ApplicationsByStatus: byStatus,
		ByCompany:            byCompany,
		BySDGGoal:            bySDG,
		BySkill:              bySkill,
		ByDepartment:         byDepartment,
		ByMode:               byMode,
	}, nil
}

// GenerateNarrativeReport serializes the current aggregates into a prompt
// and asks the generative-text service for a readable report. Upstream
// failures surface to the caller unretried.
func (s *reportService) GenerateNarrativeReport(ctx context.Context) (*dto.NarrativeReportResponse, error) {
	stats, err := s.GetOverviewStats(ctx)
	if err != nil {
		return nil, err
	}

	statsJSON, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize stats for report prompt: %w", err)
	}

	prompt := fmt.Sprintf(
		"You are writing a summary for a university internship program dashboard. "+
			"Given the following statistics, write a concise narrative report highlighting "+
			"participation, placement trends and notable skill demand. Statistics:\n%s",
		statsJSON)

	report, err := s.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	logger.Info().Int("length", len(report)).Msg("Narrative report generated")
	return &dto.NarrativeReportResponse{Report: report}, nil
}
