package dto

import (
	"hotelops/internal/domains/room/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomTypeRequest struct {
	Name            string          `json:"name"             validate:"required,max=100"`
	BasePrice       decimal.Decimal `json:"base_price"       validate:"gt=0"              swaggertype:"string"`
	CleaningMinutes int             `json:"cleaning_minutes" validate:"omitempty,min=1,max=600"`
}

func (c *CreateRoomTypeRequest) ToModel(hotelID, user string) model.RoomType {
	return model.RoomType{
		ID:              uuid.NewString(),
		HotelID:         hotelID,
		Name:            c.Name,
		BasePrice:       c.BasePrice,
		CleaningMinutes: c.CleaningMinutes,
		Metadata:        gModel.NewMetadata(timezone.Now(), user),
	}
}

type RoomTypeResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	BasePrice       decimal.Decimal `json:"base_price"       swaggertype:"string"`
	CleaningMinutes int             `json:"cleaning_minutes"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(m model.RoomType) {
	r.ID = m.ID
	r.Name = m.Name
	r.BasePrice = m.BasePrice
	r.CleaningMinutes = m.CleaningMinutes
	r.Metadata.FromModel(m.Metadata)
}

type CreateRoomRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Number     string `json:"number"       validate:"required,max=16"`
	Floor      int    `json:"floor"        validate:"min=-5,max=200"`
	IsVIP      bool   `json:"is_vip"`
}

// ToModel builds a new room. Rooms always start vacant.
func (c *CreateRoomRequest) ToModel(hotelID, user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		HotelID:    hotelID,
		RoomTypeID: c.RoomTypeID,
		Number:     c.Number,
		Floor:      c.Floor,
		Status:     model.StatusVacant,
		IsActive:   true,
		IsVIP:      c.IsVIP,
		Metadata:   gModel.NewMetadata(timezone.Now(), user),
	}
}

type ChangeStatusRequest struct {
	Status model.Status `json:"status" validate:"required,hotelops"`
	Reason string       `json:"reason" validate:"omitempty,max=255"`
}

type GetRoomsRequest struct {
	Status   model.Status `validate:"omitempty,hotelops"`
	Floor    *int
	IsActive *bool
}

type RoomResponse struct {
	ID                 string          `json:"id"`
	RoomTypeID         string          `json:"room_type_id"`
	RoomType           string          `json:"room_type"`
	Number             string          `json:"number"`
	Floor              int             `json:"floor"`
	Status             model.Status    `json:"status"`
	AllowedTransitions []model.Status  `json:"allowed_transitions"`
	IsActive           bool            `json:"is_active"`
	IsVIP              bool            `json:"is_vip"`
	BasePrice          decimal.Decimal `json:"base_price"          swaggertype:"string"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.RoomTypeID = m.RoomTypeID
	r.RoomType = m.TypeName
	r.Number = m.Number
	r.Floor = m.Floor
	r.Status = m.Status
	r.AllowedTransitions = model.AllowedTransitions(m.Status)
	r.IsActive = m.IsActive
	r.IsVIP = m.IsVIP
	r.BasePrice = m.BasePrice
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type HistoryResponse struct {
	ID        string       `json:"id"`
	OldStatus model.Status `json:"old_status"`
	NewStatus model.Status `json:"new_status"`
	Reason    string       `json:"reason"`
	ChangedBy string       `json:"changed_by"`
	ChangedAt string       `json:"changed_at"`
}

type GetHistoryResponse struct {
	Histories []HistoryResponse `json:"histories"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetHistoryResponse) FromModels(models []model.StatusHistory, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Histories = make([]HistoryResponse, len(models))
	for i, m := range models {
		g.Histories[i] = HistoryResponse{
			ID:        m.ID,
			OldStatus: m.OldStatus,
			NewStatus: m.NewStatus,
			Reason:    m.Reason,
			ChangedBy: m.ChangedBy,
			ChangedAt: timezone.Format(m.ChangedAt, constant.DateFormat),
		}
	}
}

type ReadinessResponse struct {
	RoomID  string       `json:"room_id"`
	Status  model.Status `json:"status"`
	Ready   bool         `json:"ready"`
	Message string       `json:"message"`
}
