package ws

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/internhub/internal/app/models"
)

func newTestClient(userID, facultyID int64, buffer int) *Client {
	return &Client{
		send:      make(chan []byte, buffer),
		userID:    userID,
		facultyID: facultyID,
		addr:      "test",
		logger:    zerolog.Nop(),
	}
}

func waitForClientCount(t *testing.T, hub *Hub, facultyID int64, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount(facultyID) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("faculty %d never reached %d clients (have %d)", facultyID, want, hub.ClientCount(facultyID))
}

func receiveEvent(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case data := <-c.send:
		return data
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered within 2s")
		return nil
	}
}

func testNotification(facultyID int64) *models.Notification {
	return &models.Notification{
		FacultyID:   facultyID,
		StudentID:   3,
		StudentName: "Jane Doe",
		Message:     "Jane Doe added new skills: Go",
		Type:        models.NotificationSkillAdded,
	}
}

func TestPushNotificationReachesFacultyClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	client := newTestClient(1, 7, 8)
	other := newTestClient(2, 9, 8)
	hub.register <- client
	hub.register <- other
	waitForClientCount(t, hub, 7, 1)
	waitForClientCount(t, hub, 9, 1)

	hub.PushNotification(testNotification(7))

	data := receiveEvent(t, client)
	assert.Contains(t, string(data), "skill_added")

	// The other faculty's dashboard hears nothing
	select {
	case <-other.send:
		t.Fatal("event delivered to the wrong faculty")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowClientIsDroppedWithoutStallingDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	healthy := newTestClient(1, 7, 8)
	slow := newTestClient(2, 7, 1)
	hub.register <- healthy
	hub.register <- slow
	waitForClientCount(t, hub, 7, 2)

	// Fill the slow client's buffer so the next delivery cannot reach it
	slow.send <- []byte("backlog")

	hub.PushNotification(testNotification(7))
	receiveEvent(t, healthy)

	// Dropping the slow client must not wedge the hub loop
	waitForClientCount(t, hub, 7, 1)
	hub.PushNotification(testNotification(7))
	receiveEvent(t, healthy)

	// The dropped client's channel was drained of its backlog and closed
	assert.Equal(t, []byte("backlog"), <-slow.send)
	_, open := <-slow.send
	assert.False(t, open, "slow client send channel should be closed")
}

func TestUnregisterRemovesClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	client := newTestClient(1, 7, 8)
	hub.register <- client
	waitForClientCount(t, hub, 7, 1)

	hub.unregister <- client
	waitForClientCount(t, hub, 7, 0)

	_, open := <-client.send
	require.False(t, open)
}

func TestPushNotificationSkipsFacultyWithoutClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	// No Run goroutine: a skipped push must not need one

	hub.PushNotification(testNotification(7))
	assert.Empty(t, hub.events, "push for an empty room should not enqueue")
}
