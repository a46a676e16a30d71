package model

import (
	"fmt"
	"hotelops/config"
	ledgerModel "hotelops/internal/domains/ledger/model"
	"hotelops/shared/failure"
	"hotelops/shared/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName          = "restaurant_orders"
	EntityName         = "restaurant order"
	ItemTableName      = "restaurant_order_items"
	ItemEntityName     = "restaurant order item"
	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldOrderID       = "order_id"
	FieldRoomID        = "room_id"
	FieldStatus        = "status"
	FieldSettledAt     = "settled_at"
	FieldPaymentMethod = "payment_method"
	FieldBookingID     = "booking_id"
)

const (
	ReasonInvalidOrderTransition = "invalid_order_transition"
	ReasonOrderNotSettleable     = "order_not_settleable"
	ReasonRoomChargeNotAllowed   = "room_charge_not_allowed"
)

type OrderType string

const (
	OrderTypeDineIn      OrderType = "dine_in"
	OrderTypeRoomService OrderType = "room_service"
	OrderTypeTakeaway    OrderType = "takeaway"
)

func (t OrderType) Validate(_ *config.Config) error {
	switch t {
	case OrderTypeDineIn, OrderTypeRoomService, OrderTypeTakeaway:
		return nil
	default:
		return fmt.Errorf("unknown order type %q", t)
	}
}

type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

func (s Status) Validate(_ *config.Config) error {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("unknown order status %q", s)
	}
}

// PendingStatuses are the statuses of orders still on their way to a room.
var PendingStatuses = []Status{StatusPending, StatusPreparing, StatusReady, StatusOutForDelivery}

var transitions = map[Status][]Status{
	StatusPending:        {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReady, StatusCancelled},
	StatusReady:          {StatusOutForDelivery, StatusDelivered, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
}

// ValidateTransition checks an order status change. Only room service orders go out for delivery.
func ValidateTransition(orderType OrderType, from, to Status) error {
	allowed := slices.Contains(transitions[from], to)
	if to == StatusOutForDelivery && orderType != OrderTypeRoomService {
		allowed = false
	}

	if !allowed {
		return failure.Rejected(ReasonInvalidOrderTransition, fmt.Sprintf("cannot move order from %s to %s", from, to)) //nolint:wrapcheck
	}

	return nil
}

type Order struct {
	ID            string                     `db:"id"`
	HotelID       string                     `db:"hotel_id"`
	OrderNumber   string                     `db:"order_number"`
	OrderType     OrderType                  `db:"order_type"`
	RoomID        *string                    `db:"room_id"`
	BookingID     *string                    `db:"booking_id"`
	Status        Status                     `db:"status"`
	Subtotal      decimal.Decimal            `db:"subtotal"`
	Tax           decimal.Decimal            `db:"tax"`
	Total         decimal.Decimal            `db:"total"`
	PaymentMethod *ledgerModel.PaymentMethod `db:"payment_method"`
	SettledAt     *time.Time                 `db:"settled_at"`
	model.Metadata
}

type OrderItem struct {
	ID         string          `db:"id"`
	OrderID    string          `db:"order_id"`
	MenuItemID string          `db:"menu_item_id"`
	Name       string          `db:"name"`
	Quantity   int             `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	Amount     decimal.Decimal `db:"amount"`
	model.Metadata
}

// Price totals the items and applies the tax rate.
func Price(items []OrderItem, taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}

	tax = subtotal.Mul(taxRate).Round(2)

	return subtotal, tax, subtotal.Add(tax)
}

// InventoryDeduction is the command published for the stock keeper once an order is settled.
type InventoryDeduction struct {
	HotelID     string                   `json:"hotel_id"`
	OrderID     string                   `json:"order_id"`
	OrderNumber string                   `json:"order_number"`
	Items       []InventoryDeductionItem `json:"items"`
	SettledAt   time.Time                `json:"settled_at"`
}

type InventoryDeductionItem struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}
