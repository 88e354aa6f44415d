package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationJSONCarriesRelatedData(t *testing.T) {
	n := &Notification{
		ID:          1,
		FacultyID:   2,
		StudentID:   3,
		StudentName: "Jane Doe",
		Message:     "Jane Doe added new skills: Kubernetes",
		Type:        NotificationSkillAdded,
		RelatedData: map[string]any{"added": []string{"Kubernetes"}},
		CreatedAt:   time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(n)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "skill_added", decoded["type"])
	assert.Equal(t, "Jane Doe", decoded["studentName"])
	assert.Equal(t, false, decoded["isRead"])

	related, ok := decoded["relatedData"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Kubernetes"}, related["added"])
}

func TestNotificationJSONOmitsEmptyRelatedData(t *testing.T) {
	raw, err := json.Marshal(&Notification{Type: NotificationProfileUpdate})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "relatedData")
}
