package services

import (
	"fmt"
	"strings"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/config"
)

// ChangeDetector inspects a profile update against the pre-update snapshot
// and produces the notifications owed to the student's mentor. It runs
// synchronously inside the profile update path and never touches storage.
type ChangeDetector struct {
	growthMode string
}

// NewChangeDetector creates a detector with the configured list-growth mode
func NewChangeDetector(growthMode string) *ChangeDetector {
	if growthMode == "" {
		growthMode = config.GrowthModeLength
	}
	return &ChangeDetector{growthMode: growthMode}
}

// Detect applies the notification rules in fixed order: application status
// changes, then skill growth, then certification growth, then achievement
// growth, then a single generic fallback when none of those fired but the
// patch still carries fields. A student with no assigned mentor produces
// nothing.
func (d *ChangeDetector) Detect(old *models.Student, patch *models.StudentPatch) []*models.Notification {
	if old.AssignedMentorID == nil || patch == nil || patch.IsEmpty() {
		return nil
	}

	facultyID := *old.AssignedMentorID
	studentName := patchedName(old, patch)

	var notifications []*models.Notification
	emit := func(nType models.NotificationType, message string, related map[string]any) {
		notifications = append(notifications, &models.Notification{
			FacultyID:   facultyID,
			StudentID:   old.ID,
			StudentName: studentName,
			Message:     message,
			Type:        nType,
			RelatedData: related,
		})
	}

	for _, ap := range patch.Applications {
		oldApp := findApplication(old.Applications, ap.InternshipID)
		if oldApp == nil || oldApp.Status == ap.Status {
			continue
		}
		emit(models.NotificationInternshipStatus,
			fmt.Sprintf("%s's application for %s changed from %s to %s",
				studentName, internshipLabel(oldApp), oldApp.Status, ap.Status),
			map[string]any{
				"internshipId": ap.InternshipID,
				"oldStatus":    string(oldApp.Status),
				"newStatus":    string(ap.Status),
			})
	}

	if added := d.grownItems(old.Skills, patch.Skills); len(added) > 0 {
		emit(models.NotificationSkillAdded,
			fmt.Sprintf("%s added new skills: %s", studentName, strings.Join(added, ", ")),
			map[string]any{"added": added})
	}

	if added := d.grownItems(old.Certifications, patch.Certifications); len(added) > 0 {
		emit(models.NotificationCertificationAdded,
			fmt.Sprintf("%s added new certifications: %s", studentName, strings.Join(added, ", ")),
			map[string]any{"added": added})
	}

	if added := d.grownItems(old.Achievements, patch.Achievements); len(added) > 0 {
		emit(models.NotificationAchievementAdded,
			fmt.Sprintf("%s added new achievements: %s", studentName, strings.Join(added, ", ")),
			map[string]any{"added": added})
	}

	if len(notifications) == 0 {
		fields := patch.ChangedFields()
		emit(models.NotificationProfileUpdate,
			fmt.Sprintf("%s updated their profile: %s", studentName, strings.Join(fields, ", ")),
			map[string]any{"fields": fields})
	}

	return notifications
}

// grownItems returns the entries present in the new list but not the old
// one, provided the list is considered to have grown. In length mode a list
// grows only when it got strictly longer, so replacing or reordering entries
// without lengthening the list stays silent. In set mode any genuinely new
// entry counts.
func (d *ChangeDetector) grownItems(oldList, newList []string) []string {
	if newList == nil {
		return nil
	}
	if d.growthMode == config.GrowthModeLength && len(newList) <= len(oldList) {
		return nil
	}

	seen := make(map[string]struct{}, len(oldList))
	for _, item := range oldList {
		seen[item] = struct{}{}
	}

	var added []string
	for _, item := range newList {
		if _, ok := seen[item]; !ok {
			added = append(added, item)
		}
	}
	return added
}

func findApplication(apps []models.Application, internshipID int64) *models.Application {
	for i := range apps {
		if apps[i].InternshipID == internshipID {
			return &apps[i]
		}
	}
	return nil
}

func internshipLabel(app *models.Application) string {
	if app.Internship != nil && app.Internship.Title != "" {
		return app.Internship.Title
	}
	return fmt.Sprintf("internship #%d", app.InternshipID)
}

func patchedName(old *models.Student, patch *models.StudentPatch) string {
	first, last := "", ""
	if old.User != nil {
		first, last = old.User.FirstName, old.User.LastName
	}
	if patch.FirstName != nil {
		first = *patch.FirstName
	}
	if patch.LastName != nil {
		last = *patch.LastName
	}
	return strings.TrimSpace(first + " " + last)
}
