package dto

import (
	"hotelops/internal/domains/housekeeping/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (c *CreateStaffRequest) ToModel(hotelID, user string) model.Staff {
	return model.Staff{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		Name:     c.Name,
		IsActive: true,
		Metadata: gModel.NewMetadata(timezone.Now(), user),
	}
}

type StaffResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	gDto.Metadata
}

func (s *StaffResponse) FromModel(m model.Staff) {
	s.ID = m.ID
	s.Name = m.Name
	s.IsActive = m.IsActive
	s.Metadata.FromModel(m.Metadata)
}

type CreateTaskRequest struct {
	RoomID     string         `json:"room_id"     validate:"required,uuid"`
	TaskType   model.TaskType `json:"task_type"   validate:"required,hotelops"`
	AssignedTo string         `json:"assigned_to" validate:"omitempty,uuid"`
	Notes      string         `json:"notes"       validate:"omitempty,max=500"`
}

type CompleteTaskRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type GetQueueRequest struct {
	Status     model.Status `validate:"omitempty,oneof=pending assigned in_progress"`
	AssignedTo string       `validate:"omitempty,uuid"`
}

type TaskResponse struct {
	ID               string         `json:"id"`
	RoomID           string         `json:"room_id"`
	RoomNumber       string         `json:"room_number,omitempty"`
	TaskType         model.TaskType `json:"task_type"`
	Status           model.Status   `json:"status"`
	Priority         int            `json:"priority"`
	PriorityLabel    string         `json:"priority_label"`
	AssignedTo       *string        `json:"assigned_to"`
	EstimatedMinutes int            `json:"estimated_minutes"`
	Notes            string         `json:"notes,omitempty"`
	StartedAt        *string        `json:"started_at"`
	CompletedAt      *string        `json:"completed_at"`
	gDto.Metadata
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func (t *TaskResponse) FromModel(m model.Task) {
	t.ID = m.ID
	t.RoomID = m.RoomID
	t.RoomNumber = m.RoomNumber
	t.TaskType = m.TaskType
	t.Status = m.Status
	t.Priority = m.Priority
	t.PriorityLabel = model.Label(m.Priority)
	t.AssignedTo = m.AssignedTo
	t.EstimatedMinutes = m.EstimatedMinutes
	t.Notes = m.Notes
	t.StartedAt = formatTime(m.StartedAt)
	t.CompletedAt = formatTime(m.CompletedAt)
	t.Metadata.FromModel(m.Metadata)
}

// QueueItem is an open task ranked by its current score.
type QueueItem struct {
	TaskResponse
	Score          int  `json:"score"`
	HasArrival     bool `json:"has_arrival"`
	IsVIP          bool `json:"is_vip"`
	WaitingMinutes int  `json:"waiting_minutes"`
}

type QueueResponse struct {
	Tasks []QueueItem `json:"tasks"`
}

type Assignment struct {
	TaskID     string `json:"task_id"`
	RoomNumber string `json:"room_number"`
	StaffID    string `json:"staff_id"`
	StaffName  string `json:"staff_name"`
	Score      int    `json:"score"`
}

type AutoAssignResponse struct {
	Assignments []Assignment `json:"assignments"`
}
