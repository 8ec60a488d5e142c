package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   DeliverableStatus
		deadline time.Time
		want     string
	}{
		{
			name:     "sent before deadline",
			status:   DeliverableSent,
			deadline: now.Add(24 * time.Hour),
			want:     "Entregado",
		},
		{
			name:     "sent after deadline still reads sent",
			status:   DeliverableSent,
			deadline: now.Add(-24 * time.Hour),
			want:     "Entregado",
		},
		{
			name:     "pending past deadline",
			status:   DeliverablePending,
			deadline: now.Add(-time.Minute),
			want:     "No entregado",
		},
		{
			name:     "pending with days left",
			status:   DeliverablePending,
			deadline: now.Add(3*24*time.Hour + 4*time.Hour),
			want:     "Tiempo: 3d 4h",
		},
		{
			name:     "pending with hours left",
			status:   DeliverablePending,
			deadline: now.Add(4*time.Hour + 20*time.Minute),
			want:     "Tiempo: 4h 20m",
		},
		{
			name:     "pending with minutes left",
			status:   DeliverablePending,
			deadline: now.Add(12 * time.Minute),
			want:     "Tiempo: 12m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deliverable{Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, d.DeliveryLabel(now))
		})
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	past := Deliverable{Status: DeliverablePending, Deadline: now.Add(-time.Second)}
	assert.True(t, past.Overdue(now))

	future := Deliverable{Status: DeliverablePending, Deadline: now.Add(time.Second)}
	assert.False(t, future.Overdue(now))

	sent := Deliverable{Status: DeliverableSent, Deadline: now.Add(-time.Hour)}
	assert.False(t, sent.Overdue(now), "a sent deliverable is never overdue")
}

func TestWeightedNote(t *testing.T) {
	d := Deliverable{Note: 80, Percent: 25}
	assert.InDelta(t, 20.0, d.WeightedNote(), 0.0001)

	zero := Deliverable{Note: 0, Percent: 100}
	assert.Zero(t, zero.WeightedNote())
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{25*time.Hour + 30*time.Minute, "1d 1h"},
		{2 * time.Hour, "2h 0m"},
		{59 * time.Minute, "59m"},
		{30 * time.Second, "0m"},
		{-time.Hour, "0m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRemaining(tt.d), "duration %v", tt.d)
	}
}

func TestSessionTotalSeconds(t *testing.T) {
	s := StudySession{Duration: 25}
	assert.Equal(t, 1500, s.TotalSeconds())
}
