package model

import (
	"hotelops/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName           = "rooms"
	EntityName          = "room"
	TypeTableName       = "room_types"
	TypeEntityName      = "room type"
	HistoryTableName    = "room_status_histories"
	HistoryEntityName   = "room status history"
	FieldID             = "id"
	FieldHotelID        = "hotel_id"
	FieldRoomID         = "room_id"
	FieldRoomTypeID     = "room_type_id"
	FieldNumber         = "number"
	FieldName           = "name"
	FieldFloor          = "floor"
	FieldStatus         = "status"
	FieldIsActive       = "is_active"
	FieldChangedAt      = "changed_at"
	FieldCleaningMinute = "cleaning_minutes"
)

type Room struct {
	ID              string          `db:"id"`
	HotelID         string          `db:"hotel_id"`
	RoomTypeID      string          `db:"room_type_id"`
	Number          string          `db:"number"`
	Floor           int             `db:"floor"`
	Status          Status          `db:"status"`
	IsActive        bool            `db:"is_active"`
	IsVIP           bool            `db:"is_vip"`
	TypeName        string          `column:"name"             db:"type_name"        table:"room_types"`
	BasePrice       decimal.Decimal `column:"base_price"       db:"base_price"       table:"room_types"`
	CleaningMinutes int             `column:"cleaning_minutes" db:"cleaning_minutes" table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}

type RoomType struct {
	ID              string          `db:"id"`
	HotelID         string          `db:"hotel_id"`
	Name            string          `db:"name"`
	BasePrice       decimal.Decimal `db:"base_price"`
	CleaningMinutes int             `db:"cleaning_minutes"`
	model.Metadata
}

// StatusHistory is the immutable record of one status change.
type StatusHistory struct {
	ID        string    `db:"id"`
	HotelID   string    `db:"hotel_id"`
	RoomID    string    `db:"room_id"`
	OldStatus Status    `db:"old_status"`
	NewStatus Status    `db:"new_status"`
	Reason    string    `db:"reason"`
	ChangedBy string    `db:"changed_by"`
	ChangedAt time.Time `db:"changed_at"`
}

// Transition is a requested status change, the value every transition rule inspects.
type Transition struct {
	Room   Room
	To     Status
	Reason string
	Actor  string
}

// From is the status the room is leaving.
func (t Transition) From() Status {
	return t.Room.Status
}
