package model

import (
	"fmt"
	"hotelops/config"
	"hotelops/shared/model"
	"time"
)

const (
	TableName  = "maintenance_issues"
	EntityName = "maintenance issue"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldRoomID     = "room_id"
	FieldStatus     = "status"
	FieldPriority   = "priority"
	FieldResolvedAt = "resolved_at"
	FieldResolution = "resolution"
	FieldCreatedAt  = "created_at"
)

const ReasonInvalidIssueTransition = "invalid_issue_transition"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Validate(_ *config.Config) error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return nil
	default:
		return fmt.Errorf("unknown priority %q", p)
	}
}

type Status string

const (
	StatusReported   Status = "reported"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

// OpenStatuses are the statuses of issues nobody has resolved yet.
var OpenStatuses = []Status{StatusReported, StatusInProgress}

type Issue struct {
	ID          string     `db:"id"`
	HotelID     string     `db:"hotel_id"`
	RoomID      string     `db:"room_id"`
	IssueType   string     `db:"issue_type"`
	Description string     `db:"description"`
	Priority    Priority   `db:"priority"`
	Status      Status     `db:"status"`
	Resolution  string     `db:"resolution"`
	ResolvedAt  *time.Time `db:"resolved_at"`
	RoomNumber  string     `column:"number" db:"room_number" table:"rooms"`
	model.Metadata
}

func (Issue) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = maintenance_issues.room_id"
}
