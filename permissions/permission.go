package permissions

import (
	_ "embed"
	"encoding/json"
	"hotelops/shared/constant"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{
	constant.RoleAdmin,
	constant.RoleManager,
	constant.RoleFrontDesk,
	constant.RoleHousekeeping,
	constant.RoleMaintenance,
	constant.RoleKitchen,
	constant.RoleAccountant,
	constant.RoleSystem,
}

// Permission lists the staff roles allowed on one route pattern. No roles means any signed-in staff.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// FindPermissions looks up a chi route pattern. Unlisted routes get the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[routeKey(method, path)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				log.Error().Str("path", endpoint.Path).Str("role", role).Msg("Unknown role in permissions")
			}
		}

		r.index[routeKey(endpoint.Method, endpoint.Path)] = endpoint
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded embedded permissions")

	return &permissions
}
