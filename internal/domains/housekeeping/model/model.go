package model

import (
	"fmt"
	"hotelops/config"
	"hotelops/shared/model"
	"slices"
	"time"
)

const (
	TableName       = "housekeeping_tasks"
	EntityName      = "housekeeping task"
	StaffTableName  = "housekeeping_staff"
	StaffEntityName = "housekeeping staff"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldRoomID      = "room_id"
	FieldTaskType    = "task_type"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldAssignedTo  = "assigned_to"
	FieldStartedAt   = "started_at"
	FieldCompletedAt = "completed_at"
	FieldIsActive    = "is_active"
	FieldName        = "name"
	FieldNotes       = "notes"
	FieldCreatedAt   = "created_at"
)

const (
	ReasonInvalidTaskTransition = "invalid_task_transition"
	ReasonStaffUnavailable      = "staff_unavailable"
)

type TaskType string

const (
	TaskTypeVIPClean      TaskType = "vip_clean"
	TaskTypeExpressClean  TaskType = "express_clean"
	TaskTypeCheckoutClean TaskType = "checkout_clean"
	TaskTypeMaintenance   TaskType = "maintenance"
	TaskTypeRegularClean  TaskType = "regular_clean"
	TaskTypeService       TaskType = "service"
	TaskTypeInspection    TaskType = "inspection"
	TaskTypeDeepClean     TaskType = "deep_clean"
)

var taskTypes = []TaskType{
	TaskTypeVIPClean,
	TaskTypeExpressClean,
	TaskTypeCheckoutClean,
	TaskTypeMaintenance,
	TaskTypeRegularClean,
	TaskTypeService,
	TaskTypeInspection,
	TaskTypeDeepClean,
}

func (t TaskType) Validate(_ *config.Config) error {
	if !slices.Contains(taskTypes, t) {
		return fmt.Errorf("unknown task type %q", t)
	}

	return nil
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// OpenStatuses are the statuses of tasks still waiting for, or under, work.
var OpenStatuses = []Status{StatusPending, StatusAssigned, StatusInProgress}

type Task struct {
	ID               string     `db:"id"`
	HotelID          string     `db:"hotel_id"`
	RoomID           string     `db:"room_id"`
	TaskType         TaskType   `db:"task_type"`
	Status           Status     `db:"status"`
	Priority         int        `db:"priority"`
	AssignedTo       *string    `db:"assigned_to"`
	EstimatedMinutes int        `db:"estimated_minutes"`
	Notes            string     `db:"notes"`
	StartedAt        *time.Time `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
	RoomNumber       string     `column:"number" db:"room_number" table:"rooms"`
	RoomFloor        int        `column:"floor"  db:"room_floor"  table:"rooms"`
	RoomIsVIP        bool       `column:"is_vip" db:"room_is_vip" table:"rooms"`
	model.Metadata
}

func (Task) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = housekeeping_tasks.room_id"
}

type Staff struct {
	ID       string `db:"id"`
	HotelID  string `db:"hotel_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	model.Metadata
}

// StaffLoad is an active staff member with the number of open tasks assigned to them.
type StaffLoad struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Tasks int    `db:"tasks"`
}
