package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/internhub/internal/app/models"
	"github.com/yigit/internhub/internal/config"
)

func strPtr(s string) *string { return &s }

func mentoredStudent() *models.Student {
	mentorID := int64(7)
	return &models.Student{
		ID:               3,
		UserID:           10,
		AssignedMentorID: &mentorID,
		Skills:           []string{"Go", "SQL"},
		Certifications:   []string{"AWS CCP"},
		Achievements:     []string{"Dean's List"},
		User:             &models.User{FirstName: "Ada", LastName: "Lovelace"},
		Applications: []models.Application{
			{InternshipID: 42, Status: models.ApplicationPending,
				Internship: &models.Internship{ID: 42, Title: "Backend Intern"}},
		},
	}
}

func TestDetectUnmentoredStudentProducesNothing(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	student := mentoredStudent()
	student.AssignedMentorID = nil

	got := detector.Detect(student, &models.StudentPatch{
		Skills: []string{"Go", "SQL", "Kubernetes"},
	})
	assert.Empty(t, got)
}

func TestDetectEmptyPatchProducesNothing(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	assert.Empty(t, detector.Detect(mentoredStudent(), &models.StudentPatch{}))
	assert.Empty(t, detector.Detect(mentoredStudent(), nil))
}

func TestDetectApplicationStatusChange(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Applications: []models.ApplicationPatch{
			{InternshipID: 42, Status: models.ApplicationAccepted},
		},
	})

	require.Len(t, got, 1)
	n := got[0]
	assert.Equal(t, models.NotificationInternshipStatus, n.Type)
	assert.Equal(t, int64(7), n.FacultyID)
	assert.Equal(t, int64(3), n.StudentID)
	assert.Equal(t, "Ada Lovelace", n.StudentName)
	assert.Contains(t, n.Message, "Backend Intern")
	assert.Contains(t, n.Message, "PENDING")
	assert.Contains(t, n.Message, "ACCEPTED")
	assert.Equal(t, "PENDING", n.RelatedData["oldStatus"])
	assert.Equal(t, "ACCEPTED", n.RelatedData["newStatus"])
}

func TestDetectApplicationStatusUnchangedIsSilent(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Applications: []models.ApplicationPatch{
			{InternshipID: 42, Status: models.ApplicationPending},
		},
	})

	// Same status fires no status notification; the fallback covers the patch
	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationProfileUpdate, got[0].Type)
}

func TestDetectSkillGrowthReportsOnlyAddedItems(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Skills: []string{"Go", "SQL", "Kubernetes"},
	})

	require.Len(t, got, 1)
	n := got[0]
	assert.Equal(t, models.NotificationSkillAdded, n.Type)
	assert.Contains(t, n.Message, "Kubernetes")
	assert.NotContains(t, n.Message, "SQL,")
	assert.Equal(t, []string{"Kubernetes"}, n.RelatedData["added"])
}

func TestDetectLengthModeIgnoresSameLengthReplacement(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Skills: []string{"Go", "Rust"}, // SQL swapped for Rust, same length
	})

	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationProfileUpdate, got[0].Type)
}

func TestDetectSetModeCatchesSameLengthReplacement(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeSet)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Skills: []string{"Go", "Rust"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationSkillAdded, got[0].Type)
	assert.Equal(t, []string{"Rust"}, got[0].RelatedData["added"])
}

func TestDetectReorderIsSilentInBothModes(t *testing.T) {
	for _, mode := range []string{config.GrowthModeLength, config.GrowthModeSet} {
		detector := NewChangeDetector(mode)

		got := detector.Detect(mentoredStudent(), &models.StudentPatch{
			Skills: []string{"SQL", "Go"},
		})

		require.Len(t, got, 1, "mode %s", mode)
		assert.Equal(t, models.NotificationProfileUpdate, got[0].Type, "mode %s", mode)
	}
}

func TestDetectCertificationAndAchievementGrowth(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Certifications: []string{"AWS CCP", "CKA"},
		Achievements:   []string{"Dean's List", "Hackathon Winner"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, models.NotificationCertificationAdded, got[0].Type)
	assert.Equal(t, []string{"CKA"}, got[0].RelatedData["added"])
	assert.Equal(t, models.NotificationAchievementAdded, got[1].Type)
	assert.Equal(t, []string{"Hackathon Winner"}, got[1].RelatedData["added"])
}

func TestDetectFallbackFiresOnlyWhenNoOtherRuleFired(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	// Field-only update fires the generic fallback
	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Department: strPtr("Software Engineering"),
		ResumeURL:  strPtr("https://example.com/cv.pdf"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationProfileUpdate, got[0].Type)
	assert.ElementsMatch(t, []string{"department", "resumeUrl"}, got[0].RelatedData["fields"])

	// A specific rule firing suppresses the fallback even with other fields present
	got = detector.Detect(mentoredStudent(), &models.StudentPatch{
		Department: strPtr("Software Engineering"),
		Skills:     []string{"Go", "SQL", "Kubernetes"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationSkillAdded, got[0].Type)
}

func TestDetectPatchedNameUsedInMessages(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		FirstName: strPtr("Augusta"),
		Skills:    []string{"Go", "SQL", "Kubernetes"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Augusta Lovelace", got[0].StudentName)
}

func TestDetectUnknownApplicationInPatchIsIgnored(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Applications: []models.ApplicationPatch{
			{InternshipID: 999, Status: models.ApplicationAccepted},
		},
	})

	// No matching snapshot entry, so only the fallback fires
	require.Len(t, got, 1)
	assert.Equal(t, models.NotificationProfileUpdate, got[0].Type)
}

func TestDetectMultipleRulesStackInOrder(t *testing.T) {
	detector := NewChangeDetector(config.GrowthModeLength)

	got := detector.Detect(mentoredStudent(), &models.StudentPatch{
		Applications: []models.ApplicationPatch{
			{InternshipID: 42, Status: models.ApplicationRejected},
		},
		Skills: []string{"Go", "SQL", "Terraform"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, models.NotificationInternshipStatus, got[0].Type)
	assert.Equal(t, models.NotificationSkillAdded, got[1].Type)
}
