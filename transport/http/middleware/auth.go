package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"hotelops/config"
	"hotelops/infras/jwt"
	"hotelops/infras/otel"
	"hotelops/permissions"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SkipAuthKey marks a request authenticated by the internal API key (scheduler, POS, other services).
type SkipAuthKey string

const internalCall = SkipAuthKey("skip")

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
	HotelScope(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

func isInternal(ctx context.Context) bool {
	skip, _ := ctx.Value(internalCall).(bool)

	return skip
}

// routePattern resolves the chi pattern the request will hit, so lookups work from root middleware.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()
	response.WithError(writer, err)
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Token is missing the staff id or hotels"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	default:
		return "Token validation failed"
	}
}

// APIKey marks internal callers. Requests without a key continue as staff requests; a wrong key is refused.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "staff")
			scope.End()
			next.ServeHTTP(writer, request.WithContext(context.WithValue(ctx, internalCall, false)))

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, internalCall, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleSystem)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Auth validates the staff bearer token and stores its claims on the context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")

		path := routePattern(request)

		if isInternal(ctx) || (m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString, jwt.AccessToken)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
		ctx = context.WithValue(ctx, constant.ContextKeyHotelIDs, claims.HotelIDs)

		scope.SetAttribute("user.role", claims.Role)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the staff role against the route's permission entry. Requires Auth first.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if isInternal(ctx) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)
		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(userRole) {
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// HotelScope rejects requests for a hotel the token was not issued for. Requires Auth first.
func (m *authRoleImpl) HotelScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "hotel_scope.middleware")

		if isInternal(ctx) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		hotelID := chi.URLParam(request, constant.RequestParamHotelID)
		hotelIDs, _ := ctx.Value(constant.ContextKeyHotelIDs).([]string)

		scope.SetAttribute(constant.OtelHotelAttributeKey, hotelID)

		claims := jwt.Claims{HotelIDs: hotelIDs}
		if !claims.CanAccessHotel(hotelID) {
			reject(writer, scope, failure.ResourceRestrictedError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
