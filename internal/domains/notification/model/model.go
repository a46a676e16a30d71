package model

import (
	"fmt"
	"hotelops/config"
	"hotelops/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID         = "id"
	FieldHotelID    = "hotel_id"
	FieldDepartment = "department"
	FieldIsRead     = "is_read"
	FieldCreatedAt  = "created_at"
)

type Department string

const (
	DepartmentHousekeeping Department = "housekeeping"
	DepartmentFrontDesk    Department = "front_desk"
	DepartmentManagement   Department = "management"
)

func (d Department) Validate(_ *config.Config) error {
	switch d {
	case DepartmentHousekeeping, DepartmentFrontDesk, DepartmentManagement:
		return nil
	default:
		return fmt.Errorf("unknown department %q", d)
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

type Notification struct {
	ID         string     `db:"id"          json:"id"`
	HotelID    string     `db:"hotel_id"    json:"hotel_id"`
	Department Department `db:"department"  json:"department"`
	Title      string     `db:"title"       json:"title"`
	Message    string     `db:"message"     json:"message"`
	Priority   Priority   `db:"priority"    json:"priority"`
	Severity   Severity   `db:"severity"    json:"severity"`
	Category   string     `db:"category"    json:"category"`
	RoomID     *string    `db:"room_id"     json:"room_id,omitempty"`
	IsRead     bool       `db:"is_read"     json:"is_read"`
	model.Metadata
}
