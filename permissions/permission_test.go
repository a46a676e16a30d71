package permissions_test

import (
	"hotelops/permissions"
	"hotelops/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)

	health := data.FindPermissions("/health", "GET")
	assert.True(t, health.Skip)

	refund := data.FindPermissions("/v1/hotels/{hotelID}/bookings/{id}/refunds", "POST")
	assert.NotContains(t, refund.Permissions, constant.RoleFrontDesk)
	assert.Contains(t, refund.Permissions, constant.RoleAccountant)

	audit := data.FindPermissions("/v1/hotels/{hotelID}/night-audit/", "POST")
	assert.Contains(t, audit.Permissions, constant.RoleSystem)

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/unknown", "GET"))
}

func TestPermission_Allows(t *testing.T) {
	tests := []struct {
		name       string
		permission permissions.Permission
		role       string
		want       bool
	}{
		{name: "open to all staff", permission: permissions.Permission{}, role: constant.RoleKitchen, want: true},
		{name: "listed role", permission: permissions.Permission{Permissions: []string{constant.RoleManager}}, role: constant.RoleManager, want: true},
		{name: "unlisted role", permission: permissions.Permission{Permissions: []string{constant.RoleManager}}, role: constant.RoleFrontDesk, want: false},
		{name: "missing role", permission: permissions.Permission{Permissions: []string{constant.RoleManager}}, role: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.permission.Allows(tt.role))
		})
	}
}

func TestFindPermissions_WithoutGet(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/hotels/{hotelID}/ledger/trial-balance", Method: "GET", Permissions: []string{constant.RoleAccountant}},
		},
	}

	got := data.FindPermissions("/v1/hotels/{hotelID}/ledger/trial-balance", "GET")

	assert.Equal(t, []string{constant.RoleAccountant}, got.Permissions)
	assert.Empty(t, data.FindPermissions("/v1/hotels/{hotelID}/ledger/trial-balance", "POST").Path)
}
