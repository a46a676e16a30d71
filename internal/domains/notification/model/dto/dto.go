package dto

import (
	"hotelops/internal/domains/notification/model"
	"hotelops/shared"
	gDto "hotelops/shared/dto"
)

type GetNotificationsRequest struct {
	Department model.Department `validate:"omitempty,hotelops"`
	Unread     *bool
}

type NotificationResponse struct {
	ID         string           `json:"id"`
	HotelID    string           `json:"hotel_id"`
	Department model.Department `json:"department"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Priority   model.Priority   `json:"priority"`
	Severity   model.Severity   `json:"severity"`
	Category   string           `json:"category"`
	RoomID     *string          `json:"room_id,omitempty"`
	IsRead     bool             `json:"is_read"`
	gDto.Metadata
}

func (n *NotificationResponse) FromModel(m model.Notification) {
	n.ID = m.ID
	n.HotelID = m.HotelID
	n.Department = m.Department
	n.Title = m.Title
	n.Message = m.Message
	n.Priority = m.Priority
	n.Severity = m.Severity
	n.Category = m.Category
	n.RoomID = m.RoomID
	n.IsRead = m.IsRead
	n.Metadata.FromModel(m.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (g *GetNotificationsResponse) FromModels(models []model.Notification, total, limit int) {
	g.Notifications = make([]NotificationResponse, len(models))
	for i, m := range models {
		g.Notifications[i].FromModel(m)
	}

	g.TotalData = total
	g.TotalPage = shared.CalculateTotalPage(total, limit)
}
