package validator_test

import (
	"hotelops/shared/failure"
	"hotelops/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type guestRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"omitempty,email"`
	Adults   int    `json:"adults"    validate:"gte=1,lte=8"`
	Source   string `json:"source"    validate:"omitempty,oneof=front_desk phone online walk_in"`
	CheckIn  string `json:"check_in"  validate:"required,datetime=2006-01-02"`
}

func validGuest() guestRequest {
	return guestRequest{FullName: "Ayu Lestari", Email: "ayu@example.com", Adults: 2, CheckIn: "2026-10-15"}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *guestRequest)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(_ *guestRequest) {},
		},
		{
			name:    "missing name uses json field name",
			mutate:  func(r *guestRequest) { r.FullName = "" },
			wantErr: "full_name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(r *guestRequest) { r.Email = "ayu" },
			wantErr: "email must be a valid email address",
		},
		{
			name:    "too many adults",
			mutate:  func(r *guestRequest) { r.Adults = 9 },
			wantErr: "adults must be less than or equal to 8",
		},
		{
			name:    "unknown source",
			mutate:  func(r *guestRequest) { r.Source = "fax" },
			wantErr: "source must be one of front_desk phone online walk_in",
		},
		{
			name:    "bad date",
			mutate:  func(r *guestRequest) { r.CheckIn = "15/10/2026" },
			wantErr: "check_in must be a date formatted as 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validGuest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_ReportsEveryField(t *testing.T) {
	err := validator.ValidateStruct(&guestRequest{Adults: 1})

	assert.EqualError(t, err, "full_name is required; check_in is required")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"full_name":"Ayu","adults":2,"check_in":"2026-10-15"}`},
		{name: "fails validation", body: `{"full_name":"Ayu","adults":0,"check_in":"2026-10-15"}`, wantErr: true},
		{name: "malformed", body: `{"full_name":`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req guestRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Ayu", req.FullName)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("3f1c2b9e-8d4a-4c47-9a0e-2b6f1d7c5e10", "uuid"))
	assert.EqualError(t, validator.ValidateVar("room-1", "uuid"), "value must be a valid UUID")
}

type paymentRequest struct {
	Amount   decimal.Decimal  `json:"amount"   validate:"gt=0"`
	Discount *decimal.Decimal `json:"discount" validate:"omitempty,gte=0"`
}

func TestDecimalValidation(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	zero := decimal.Zero

	tests := []struct {
		name    string
		data    paymentRequest
		wantErr bool
	}{
		{name: "positive amount", data: paymentRequest{Amount: decimal.NewFromInt(300000)}},
		{name: "zero discount allowed", data: paymentRequest{Amount: decimal.NewFromInt(1), Discount: &zero}},
		{name: "zero amount rejected", data: paymentRequest{Amount: decimal.Zero}, wantErr: true},
		{name: "negative discount rejected", data: paymentRequest{Amount: decimal.NewFromInt(1), Discount: &negative}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			assert.Equal(t, tt.wantErr, err != nil, "error: %v", err)
		})
	}
}
