package model

import (
	"fmt"
	"hotelops/config"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileMoney  PaymentMethod = "mobile_money"
	PaymentMethodRoomCharge   PaymentMethod = "room_charge"
)

// AccountCode returns the asset account a payment by this method lands in.
func (m PaymentMethod) AccountCode() string {
	switch m {
	case PaymentMethodCash:
		return AccountCash
	case PaymentMethodRoomCharge:
		return AccountRoomsReceivable
	default:
		return AccountBank
	}
}

func (m PaymentMethod) Validate(_ *config.Config) error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodMobileMoney, PaymentMethodRoomCharge:
		return nil
	default:
		return fmt.Errorf("unknown payment method %q", m)
	}
}
