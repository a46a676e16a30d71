package model_test

import (
	"hotelops/internal/domains/housekeeping/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		in   model.ScoreInput
		want int
	}{
		{name: "checkout clean", in: model.ScoreInput{TaskType: model.TaskTypeCheckoutClean}, want: 80},
		{name: "unknown type uses default weight", in: model.ScoreInput{TaskType: "laundry"}, want: 50},
		{name: "arrival today", in: model.ScoreInput{TaskType: model.TaskTypeDeepClean, HasArrival: true}, want: 70},
		{name: "vip room", in: model.ScoreInput{TaskType: model.TaskTypeInspection, IsVIP: true}, want: 70},
		{name: "within grace period", in: model.ScoreInput{TaskType: model.TaskTypeDeepClean, Waiting: 4*time.Hour + 30*time.Minute}, want: 30},
		{name: "waiting six hours", in: model.ScoreInput{TaskType: model.TaskTypeDeepClean, Waiting: 6 * time.Hour}, want: 34},
		{name: "waiting bonus capped", in: model.ScoreInput{TaskType: model.TaskTypeDeepClean, Waiting: 48 * time.Hour}, want: 50},
		{name: "score capped", in: model.ScoreInput{TaskType: model.TaskTypeVIPClean, HasArrival: true, IsVIP: true}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Score(tt.in))
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, model.LabelHigh, model.Label(80))
	assert.Equal(t, model.LabelMedium, model.Label(79))
	assert.Equal(t, model.LabelMedium, model.Label(50))
	assert.Equal(t, model.LabelLow, model.Label(49))
}

func TestEstimateMinutes(t *testing.T) {
	assert.Equal(t, 52, model.EstimateMinutes(model.TaskTypeCheckoutClean, 0))
	assert.Equal(t, 60, model.EstimateMinutes(model.TaskTypeDeepClean, 30))
	assert.Equal(t, 12, model.EstimateMinutes(model.TaskTypeInspection, 40))
	assert.Equal(t, 45, model.EstimateMinutes("laundry", 45))
}

func TestNewCheckoutTask(t *testing.T) {
	now := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)

	task := model.NewCheckoutTask("hotel-1", "room-1", true, 30, now, "staff-1")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, model.TaskTypeCheckoutClean, task.TaskType)
	assert.Equal(t, model.StatusPending, task.Status)
	assert.Equal(t, 100, task.Priority)
	assert.Equal(t, 39, task.EstimatedMinutes)
	assert.Equal(t, "staff-1", task.CreatedBy)
}
