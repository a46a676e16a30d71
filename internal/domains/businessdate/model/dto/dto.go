package dto

import (
	"hotelops/internal/domains/businessdate/model"
	"hotelops/shared/timezone"
)

type BusinessDateResponse struct {
	HotelID             string `json:"hotel_id"`
	CurrentBusinessDate string `json:"current_business_date"`
	IsClosed            bool   `json:"is_closed"`
	LastClosedDate      string `json:"last_closed_date,omitempty"`
}

func (r *BusinessDateResponse) FromModel(model model.BusinessDate) {
	r.HotelID = model.HotelID
	r.CurrentBusinessDate = timezone.FormatDate(model.CurrentBusinessDate)
	r.IsClosed = model.IsClosed

	if model.ClosedDate != nil {
		r.LastClosedDate = timezone.FormatDate(*model.ClosedDate)
	}
}
