package services

import (
	"context"
	"time"

	"github.com/yigit/internhub/internal/app/repositories"
	"github.com/yigit/internhub/internal/pkg/email"
	"github.com/yigit/internhub/internal/pkg/helpers"
	"github.com/yigit/internhub/internal/pkg/logger"
)

// ReminderService runs the daily deadline-reminder job: students with a
// pending application on an internship closing soon get an email nudge.
type ReminderService struct {
	internships  *repositories.InternshipRepository
	applications *repositories.ApplicationRepository
	emails       email.EmailService
	runAt        string
	daysAhead    int
}

// NewReminderService creates a new ReminderService
func NewReminderService(
	internships *repositories.InternshipRepository,
	applications *repositories.ApplicationRepository,
	emails email.EmailService,
	runAt string,
	daysAhead int,
) *ReminderService {
	if daysAhead <= 0 {
		daysAhead = 3
	}
	return &ReminderService{
		internships:  internships,
		applications: applications,
		emails:       emails,
		runAt:        runAt,
		daysAhead:    daysAhead,
	}
}

// Start runs the job once per day at the configured wall-clock time until
// the context is cancelled. Call in a goroutine.
func (s *ReminderService) Start(ctx context.Context) {
	for {
		next := helpers.NextDailyRun(time.Now(), s.runAt)
		logger.Info().Time("nextRun", next).Msg("Deadline reminder job scheduled")

		select {
		case <-ctx.Done():
			logger.Info().Msg("Deadline reminder job stopped")
			return
		case <-time.After(time.Until(next)):
			s.RunOnce(ctx)
		}
	}
}

// RunOnce sends reminders for every open internship closing within the
// configured window. Individual send failures are logged and skipped so one
// bad address cannot starve the rest of the batch.
func (s *ReminderService) RunOnce(ctx context.Context) {
	internships, err := s.internships.ListClosingSoon(ctx, s.daysAhead)
	if err != nil {
		logger.Error().Err(err).Msg("Deadline reminder job failed to list closing internships")
		return
	}

	sent := 0
	for _, internship := range internships {
		applicants, err := s.applications.ListApplicantsForInternship(ctx, internship.ID)
		if err != nil {
			logger.Error().Err(err).Int64("internshipID", internship.ID).
				Msg("Deadline reminder job failed to list applicants")
			continue
		}

		daysLeft := int(time.Until(internship.Deadline).Hours()/24) + 1
		for _, applicant := range applicants {
			if err := s.emails.SendDeadlineReminder(applicant.Email, applicant.FirstName,
				internship.Title, internship.Company, daysLeft); err != nil {
				logger.Error().Err(err).Str("email", applicant.Email).Msg("Failed to send deadline reminder")
				continue
			}
			sent++
		}
	}

	logger.Info().Int("internships", len(internships)).Int("sent", sent).Msg("Deadline reminder job finished")
}
