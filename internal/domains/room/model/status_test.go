package model_test

import (
	"hotelops/internal/domains/room/model"
	"hotelops/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from    model.Status
		to      model.Status
		wantErr bool
		message string
	}{
		{from: model.StatusVacant, to: model.StatusDirty},
		{from: model.StatusVacant, to: model.StatusOccupied},
		{from: model.StatusReserved, to: model.StatusVacant},
		{from: model.StatusOccupied, to: model.StatusDirty},
		{from: model.StatusMaintenance, to: model.StatusDirty},
		{from: model.StatusDirty, to: model.StatusVacant},
		{from: model.StatusVacant, to: model.StatusVacant, wantErr: true, message: "Room is already vacant"},
		{from: model.StatusOccupied, to: model.StatusVacant, wantErr: true, message: "Cannot mark occupied room as vacant. Must check out guest first."},
		{from: model.StatusDirty, to: model.StatusOccupied, wantErr: true, message: "Cannot assign guest to dirty room. Must clean first."},
		{from: model.StatusDirty, to: model.StatusReserved, wantErr: true, message: "Cannot reserve dirty room. Must clean first."},
		{from: model.StatusOccupied, to: model.StatusReserved, wantErr: true, message: "Cannot transition from occupied to reserved"},
		{from: model.StatusMaintenance, to: model.StatusOccupied, wantErr: true, message: "Cannot transition from maintenance to occupied"},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			err := model.ValidateTransition(tt.from, tt.to)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, model.ReasonInvalidTransition, failure.GetReason(err))
		})
	}
}

func TestValidateTransition_NoBlockedEdgeIsAllowed(t *testing.T) {
	for _, from := range []model.Status{model.StatusVacant, model.StatusDirty, model.StatusOccupied, model.StatusReserved, model.StatusMaintenance} {
		for _, to := range model.AllowedTransitions(from) {
			assert.NoError(t, model.ValidateTransition(from, to), "%s to %s", from, to)
			assert.NotEqual(t, from, to)
		}
	}
}

func TestCheckInReadiness(t *testing.T) {
	tests := []struct {
		status  model.Status
		ready   bool
		message string
	}{
		{status: model.StatusVacant, ready: true, message: "Room is ready for check-in"},
		{status: model.StatusReserved, ready: true, message: "Room is ready for check-in"},
		{status: model.StatusDirty, message: "Room needs cleaning before check-in"},
		{status: model.StatusOccupied, message: "Room is currently occupied"},
		{status: model.StatusMaintenance, message: "Room is under maintenance"},
	}

	for _, tt := range tests {
		ready, message := model.CheckInReadiness(tt.status)

		assert.Equal(t, tt.ready, ready, tt.status)
		assert.Equal(t, tt.message, message)
	}
}

func TestStatusValidate(t *testing.T) {
	assert.NoError(t, model.StatusMaintenance.Validate(nil))
	assert.Error(t, model.Status("cleaning").Validate(nil))
}
