package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalops/vehicle_rental/internal/models"
)

func TestProtectedRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodGet, "/api/payments"},
		{http.MethodGet, "/api/tickets"},
		{http.MethodPost, "/api/vehicles"},
		{http.MethodDelete, "/api/vehicles/1"},
		{http.MethodGet, "/api/dashboard/admin"},
		{http.MethodGet, "/api/dashboard/user"},
	}

	for _, tt := range paths {
		tt := tt
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			rec := srv.do(tt.method, tt.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Unauthorized: Token required", srv.decode(rec)["error"])
		})
	}
}

func TestAdminRoutes_RejectRegularUsers(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, userToken := srv.seedUser("user@example.com", models.RoleUser)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/payments"},
		{http.MethodGet, "/api/tickets"},
		{http.MethodPost, "/api/vehicles"},
		{http.MethodDelete, "/api/vehicles/1"},
	}

	for _, tt := range paths {
		tt := tt
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()

			rec := srv.do(tt.method, tt.path, nil, userToken)
			require.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Forbidden: Insufficient permissions", srv.decode(rec)["error"])
		})
	}
}

func TestInvalidToken_Is401(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/users", nil, "not-a-valid-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: Invalid token", srv.decode(rec)["error"])
}

func TestPublicVehicleRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/vehicles", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSearch_UnconfiguredIs503(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/api/vehicles/search?q=corolla", nil, "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUsers_AdminListAndPromote(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, adminToken := srv.seedUser("admin@example.com", models.RoleAdmin)
	target, _ := srv.seedUser("user@example.com", models.RoleUser)

	rec := srv.do(http.MethodGet, "/api/users", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodPatch, fmt.Sprintf("/api/users/%d/role", target.ID), map[string]string{"role": "admin"}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Role updated successfully", srv.decode(rec)["message"])

	var promoted models.User
	require.NoError(t, srv.DB.First(&promoted, target.ID).Error)
	assert.Equal(t, models.RoleAdmin, promoted.Role)
}

func TestUsers_PromotionIsAdminOnly(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	self, userToken := srv.seedUser("user@example.com", models.RoleUser)

	rec := srv.do(http.MethodPatch, fmt.Sprintf("/api/users/%d/role", self.ID), map[string]string{"role": "admin"}, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden: Insufficient permissions", srv.decode(rec)["error"])
}

func TestUsers_UpdateOwnProfileOnly(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	self, userToken := srv.seedUser("user@example.com", models.RoleUser)
	other, _ := srv.seedUser("other@example.com", models.RoleUser)

	rec := srv.do(http.MethodPut, fmt.Sprintf("/api/users/%d", self.ID), map[string]string{"first_name": "Janet"}, userToken)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(http.MethodPut, fmt.Sprintf("/api/users/%d", other.ID), map[string]string{"first_name": "Hacked"}, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var untouched models.User
	require.NoError(t, srv.DB.First(&untouched, other.ID).Error)
	assert.Equal(t, "Test", untouched.FirstName)
}

func TestDashboard_AdminGateStacksAfterAuth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, userToken := srv.seedUser("user@example.com", models.RoleUser)
	_, adminToken := srv.seedUser("admin@example.com", models.RoleAdmin)

	rec := srv.do(http.MethodGet, "/api/dashboard/admin", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: Token required", srv.decode(rec)["error"])

	rec = srv.do(http.MethodGet, "/api/dashboard/admin", nil, userToken)
	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Forbidden: Admin access required", srv.decode(rec)["error"])

	rec = srv.do(http.MethodGet, "/api/dashboard/admin", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestBookings_OwnerComesFromSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	self, userToken := srv.seedUser("user@example.com", models.RoleUser)

	// A user_id in the payload is ignored, the session decides ownership.
	rec := srv.do(http.MethodPost, "/api/bookings", map[string]any{
		"user_id":      9999,
		"vehicle_id":   1,
		"booking_date": "2026-09-01",
		"return_date":  "2026-09-05",
		"total_amount": 480,
	}, userToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking models.Booking
	require.NoError(t, srv.DB.Order("id DESC").First(&booking).Error)
	assert.Equal(t, self.ID, booking.UserID)
	assert.Equal(t, models.BookingPending, booking.BookingStatus)
}

func TestBookings_InvalidDatesAre400(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, userToken := srv.seedUser("user@example.com", models.RoleUser)

	rec := srv.do(http.MethodPost, "/api/bookings", map[string]any{
		"vehicle_id":   1,
		"booking_date": "2026-09-05",
		"return_date":  "2026-09-01",
		"total_amount": 480,
	}, userToken)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTickets_ReporterComesFromSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	self, userToken := srv.seedUser("user@example.com", models.RoleUser)

	rec := srv.do(http.MethodPost, "/api/tickets", map[string]any{
		"subject":     "Flat tire",
		"description": "The rear left tire went flat on the highway.",
	}, userToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	var ticket models.SupportTicket
	require.NoError(t, srv.DB.Order("id DESC").First(&ticket).Error)
	assert.Equal(t, self.ID, ticket.UserID)
	assert.Equal(t, models.TicketOpen, ticket.Status)
}

func TestParseID_RejectsGarbage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, adminToken := srv.seedUser("admin@example.com", models.RoleAdmin)

	for _, path := range []string{"/api/users/abc", "/api/users/0", "/api/users/-3"} {
		rec := srv.do(http.MethodGet, path, nil, adminToken)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, "id must be a positive integer", srv.decode(rec)["error"])
	}
}

func TestNotFound_Rendering(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	_, adminToken := srv.seedUser("admin@example.com", models.RoleAdmin)

	rec := srv.do(http.MethodGet, "/api/users/9999", nil, adminToken)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", srv.decode(rec)["error"])
}
