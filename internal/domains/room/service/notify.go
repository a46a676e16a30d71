package service

import (
	"fmt"
	notificationModel "hotelops/internal/domains/notification/model"
	"hotelops/internal/domains/room/model"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	categoryHousekeeping = "housekeeping"
	categoryOperational  = "operational"
	categoryFinancial    = "financial"
)

type notice struct {
	department notificationModel.Department
	title      string
	message    string
	priority   notificationModel.Priority
	severity   notificationModel.Severity
	category   string
}

// notices lists what each department is told about a committed status change.
func notices(t model.Transition, lossRatio decimal.Decimal) []notice {
	number := t.Room.Number
	res := []notice{}

	switch {
	case t.To == model.StatusDirty:
		priority := notificationModel.PriorityNormal
		if t.From() == model.StatusOccupied {
			priority = notificationModel.PriorityHigh
		}

		res = append(res, notice{
			department: notificationModel.DepartmentHousekeeping,
			title:      fmt.Sprintf("Room %s Needs Cleaning", number),
			message:    "Room is now dirty. Reason: " + t.Reason,
			priority:   priority,
			severity:   notificationModel.SeverityWarning,
			category:   categoryHousekeeping,
		})
	case t.From() == model.StatusDirty && t.To == model.StatusVacant:
		res = append(res, notice{
			department: notificationModel.DepartmentHousekeeping,
			title:      fmt.Sprintf("Room %s Cleaned", number),
			message:    "Room cleaning completed. Ready for inspection.",
			priority:   notificationModel.PriorityNormal,
			severity:   notificationModel.SeveritySuccess,
			category:   categoryHousekeeping,
		})
	}

	switch {
	case t.To == model.StatusMaintenance:
		res = append(res,
			notice{
				department: notificationModel.DepartmentFrontDesk,
				title:      fmt.Sprintf("Room %s Out of Order", number),
				message:    fmt.Sprintf("Room is now OOO. Reason: %s. Cannot sell until fixed.", t.Reason),
				priority:   notificationModel.PriorityHigh,
				severity:   notificationModel.SeverityDanger,
				category:   categoryOperational,
			},
			notice{
				department: notificationModel.DepartmentManagement,
				title:      fmt.Sprintf("Revenue Alert: Room %s OOO", number),
				message:    "Room out of order. Expected daily revenue loss: " + t.Room.BasePrice.Mul(lossRatio).StringFixed(2),
				priority:   notificationModel.PriorityHigh,
				severity:   notificationModel.SeverityWarning,
				category:   categoryFinancial,
			},
		)
	case t.From() == model.StatusMaintenance && t.To == model.StatusVacant:
		res = append(res, notice{
			department: notificationModel.DepartmentFrontDesk,
			title:      fmt.Sprintf("Room %s Available", number),
			message:    "Room is back in service. Ready for check-in.",
			priority:   notificationModel.PriorityNormal,
			severity:   notificationModel.SeveritySuccess,
			category:   categoryOperational,
		})
	case t.To == model.StatusVacant:
		res = append(res, notice{
			department: notificationModel.DepartmentFrontDesk,
			title:      fmt.Sprintf("Room %s Ready for Check-in", number),
			message:    "Room is clean and vacant.",
			priority:   notificationModel.PriorityNormal,
			severity:   notificationModel.SeverityInfo,
			category:   categoryOperational,
		})
	}

	return res
}

func buildNotifications(t model.Transition, lossRatio decimal.Decimal) []notificationModel.Notification {
	items := notices(t, lossRatio)
	if len(items) == 0 {
		return nil
	}

	roomID := t.Room.ID
	metadata := gModel.NewMetadata(timezone.Now(), t.Actor)

	res := make([]notificationModel.Notification, len(items))
	for i, n := range items {
		res[i] = notificationModel.Notification{
			ID:         uuid.NewString(),
			HotelID:    t.Room.HotelID,
			Department: n.department,
			Title:      n.title,
			Message:    n.message,
			Priority:   n.priority,
			Severity:   n.severity,
			Category:   n.category,
			RoomID:     &roomID,
			Metadata:   metadata,
		}
	}

	return res
}
