package model

import (
	"hotelops/shared/model"
	"time"

	"github.com/google/uuid"
)

const (
	defaultWeight          = 50
	arrivalBonus           = 40
	vipBonus               = 30
	waitingGraceHours      = 4
	waitingPointsPerHour   = 2
	maxWaitingBonus        = 20
	maxScore               = 100
	highThreshold          = 80
	mediumThreshold        = 50
	defaultCleaningMinutes = 40
)

const (
	LabelHigh   = "High"
	LabelMedium = "Medium"
	LabelLow    = "Low"
)

var weights = map[TaskType]int{
	TaskTypeVIPClean:      100,
	TaskTypeExpressClean:  90,
	TaskTypeCheckoutClean: 80,
	TaskTypeMaintenance:   70,
	TaskTypeRegularClean:  60,
	TaskTypeService:       50,
	TaskTypeInspection:    40,
	TaskTypeDeepClean:     30,
}

var multipliers = map[TaskType]float64{
	TaskTypeRegularClean:  1.0,
	TaskTypeCheckoutClean: 1.3,
	TaskTypeExpressClean:  0.7,
	TaskTypeDeepClean:     2.0,
	TaskTypeService:       0.5,
	TaskTypeInspection:    0.3,
	TaskTypeVIPClean:      1.5,
	TaskTypeMaintenance:   1.0,
}

// ScoreInput is what a task's urgency depends on.
type ScoreInput struct {
	TaskType   TaskType
	HasArrival bool
	IsVIP      bool
	Waiting    time.Duration
}

// Score ranks a task from 0 to 100.
func Score(in ScoreInput) int {
	score, ok := weights[in.TaskType]
	if !ok {
		score = defaultWeight
	}

	if in.HasArrival {
		score += arrivalBonus
	}

	if in.IsVIP {
		score += vipBonus
	}

	if hours := int(in.Waiting.Hours()); hours > waitingGraceHours {
		score += min((hours-waitingGraceHours)*waitingPointsPerHour, maxWaitingBonus)
	}

	return min(score, maxScore)
}

func Label(score int) string {
	switch {
	case score >= highThreshold:
		return LabelHigh
	case score >= mediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}

// EstimateMinutes scales the room type's cleaning time by the task type.
func EstimateMinutes(taskType TaskType, roomTypeMinutes int) int {
	if roomTypeMinutes <= 0 {
		roomTypeMinutes = defaultCleaningMinutes
	}

	multiplier, ok := multipliers[taskType]
	if !ok {
		multiplier = 1.0
	}

	return int(float64(roomTypeMinutes) * multiplier)
}

// NewCheckoutTask is the cleaning task raised when a guest leaves a room.
func NewCheckoutTask(hotelID, roomID string, isVIP bool, roomTypeMinutes int, now time.Time, actor string) Task {
	return Task{
		ID:               uuid.NewString(),
		HotelID:          hotelID,
		RoomID:           roomID,
		TaskType:         TaskTypeCheckoutClean,
		Status:           StatusPending,
		Priority:         Score(ScoreInput{TaskType: TaskTypeCheckoutClean, IsVIP: isVIP}),
		EstimatedMinutes: EstimateMinutes(TaskTypeCheckoutClean, roomTypeMinutes),
		Notes:            "Guest checked out",
		Metadata:         model.NewMetadata(now, actor),
	}
}
