package dto

import (
	ledgerModel "hotelops/internal/domains/ledger/model"
	"hotelops/internal/domains/restaurant/model"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemRequest struct {
	MenuItemID string          `json:"menu_item_id" validate:"required,max=64"`
	Name       string          `json:"name"         validate:"required,max=255"`
	Quantity   int             `json:"quantity"     validate:"required,min=1,max=100"`
	UnitPrice  decimal.Decimal `json:"unit_price"   validate:"gt=0"`
}

type CreateOrderRequest struct {
	OrderType model.OrderType    `json:"order_type" validate:"required,hotelops"`
	RoomID    string             `json:"room_id"    validate:"omitempty,uuid"`
	Items     []OrderItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// ToItems prices every line at quantity times unit price.
func (r CreateOrderRequest) ToItems(orderID string, now time.Time, actor string) []model.OrderItem {
	items := make([]model.OrderItem, len(r.Items))

	for i, item := range r.Items {
		items[i] = model.OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Amount:     item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			Metadata:   gModel.NewMetadata(now, actor),
		}
	}

	return items
}

type UpdateStatusRequest struct {
	Status model.Status `json:"status" validate:"required,hotelops"`
}

type SettleOrderRequest struct {
	PaymentMethod ledgerModel.PaymentMethod `json:"payment_method" validate:"required,hotelops"`
}

type OrderItemResponse struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Amount     decimal.Decimal `json:"amount"`
}

type OrderResponse struct {
	ID            string                     `json:"id"`
	OrderNumber   string                     `json:"order_number"`
	OrderType     model.OrderType            `json:"order_type"`
	RoomID        *string                    `json:"room_id"`
	BookingID     *string                    `json:"booking_id"`
	Status        model.Status               `json:"status"`
	Subtotal      decimal.Decimal            `json:"subtotal"`
	Tax           decimal.Decimal            `json:"tax"`
	Total         decimal.Decimal            `json:"total"`
	PaymentMethod *ledgerModel.PaymentMethod `json:"payment_method"`
	SettledAt     *string                    `json:"settled_at"`
	Items         []OrderItemResponse        `json:"items,omitempty"`
	gDto.Metadata
}

func (o *OrderResponse) FromModel(m model.Order, items []model.OrderItem) {
	o.ID = m.ID
	o.OrderNumber = m.OrderNumber
	o.OrderType = m.OrderType
	o.RoomID = m.RoomID
	o.BookingID = m.BookingID
	o.Status = m.Status
	o.Subtotal = m.Subtotal
	o.Tax = m.Tax
	o.Total = m.Total
	o.PaymentMethod = m.PaymentMethod

	if m.SettledAt != nil {
		settled := timezone.Format(*m.SettledAt, constant.DateFormat)
		o.SettledAt = &settled
	}

	if len(items) > 0 {
		o.Items = make([]OrderItemResponse, len(items))
		for i, item := range items {
			o.Items[i] = OrderItemResponse{
				MenuItemID: item.MenuItemID,
				Name:       item.Name,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Amount:     item.Amount,
			}
		}
	}

	o.Metadata.FromModel(m.Metadata)
}
