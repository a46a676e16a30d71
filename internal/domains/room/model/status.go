package model

import (
	"fmt"
	"hotelops/config"
	"hotelops/shared/failure"
	"slices"
)

// Rejection reasons.
const (
	ReasonInvalidTransition    = "invalid_room_transition"
	ReasonBookingConflict      = "booking_conflict"
	ReasonHousekeepingConflict = "housekeeping_conflict"
	ReasonRoomServiceConflict  = "room_service_conflict"
	ReasonMaintenanceConflict  = "maintenance_conflict"
	ReasonRoomNotReady         = "room_not_ready"
	ReasonRoomInactive         = "room_inactive"
	ReasonRoomOccupied         = "room_occupied"
	ReasonDuplicateNumber      = "duplicate_room_number"
)

type Status string

const (
	StatusVacant      Status = "vacant"
	StatusDirty       Status = "dirty"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

var statuses = []Status{StatusVacant, StatusDirty, StatusOccupied, StatusReserved, StatusMaintenance}

func (s Status) Validate(_ *config.Config) error {
	if !slices.Contains(statuses, s) {
		return fmt.Errorf("unknown room status %q", s)
	}

	return nil
}

var transitions = map[Status][]Status{
	StatusVacant:      {StatusDirty, StatusReserved, StatusMaintenance, StatusOccupied},
	StatusDirty:       {StatusVacant, StatusMaintenance},
	StatusOccupied:    {StatusDirty, StatusMaintenance},
	StatusReserved:    {StatusOccupied, StatusVacant, StatusDirty, StatusMaintenance},
	StatusMaintenance: {StatusVacant, StatusDirty},
}

type edge struct {
	from, to Status
}

// blocked edges are refused with a message telling staff what to do instead.
var blocked = map[edge]string{
	{StatusOccupied, StatusVacant}: "Cannot mark occupied room as vacant. Must check out guest first.",
	{StatusDirty, StatusOccupied}:  "Cannot assign guest to dirty room. Must clean first.",
	{StatusDirty, StatusReserved}:  "Cannot reserve dirty room. Must clean first.",
}

// ValidateTransition checks one edge of the room status machine.
func ValidateTransition(from, to Status) error {
	if from == to {
		return failure.Rejected(ReasonInvalidTransition, fmt.Sprintf("Room is already %s", from)) //nolint:wrapcheck
	}

	if msg, ok := blocked[edge{from, to}]; ok {
		return failure.Rejected(ReasonInvalidTransition, msg) //nolint:wrapcheck
	}

	if !slices.Contains(transitions[from], to) {
		return failure.Rejected(ReasonInvalidTransition, fmt.Sprintf("Cannot transition from %s to %s", from, to)) //nolint:wrapcheck
	}

	return nil
}

// AllowedTransitions lists the statuses a room in status s may move to.
func AllowedTransitions(s Status) []Status {
	return slices.Clone(transitions[s])
}

// CheckInReadiness reports whether a guest can be put in a room in status s.
func CheckInReadiness(s Status) (bool, string) {
	switch s {
	case StatusVacant, StatusReserved:
		return true, "Room is ready for check-in"
	case StatusDirty:
		return false, "Room needs cleaning before check-in"
	case StatusOccupied:
		return false, "Room is currently occupied"
	case StatusMaintenance:
		return false, "Room is under maintenance"
	default:
		return false, fmt.Sprintf("Room status %s does not allow check-in", s)
	}
}
