package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rentalops/vehicle_rental/internal/hash"
	mw "github.com/rentalops/vehicle_rental/internal/middleware"
	"github.com/rentalops/vehicle_rental/internal/models"
	"github.com/rentalops/vehicle_rental/internal/repo"
	"github.com/rentalops/vehicle_rental/internal/service"
	"github.com/rentalops/vehicle_rental/internal/tokens"
)

var testJWTSecret = []byte("test-jwt-secret")

type testServer struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	RP *repo.GormRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.VehicleSpecification{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Payment{},
		&models.SupportTicket{},
	))

	rp := &repo.GormRepo{DB: db}

	e := echo.New()
	Register(e, &Deps{
		Auth:      mw.NewAuth(testJWTSecret),
		AuthHTTP:  &AuthHTTP{Svc: &service.AuthService{Repo: rp, JWTSecret: testJWTSecret}},
		Users:     &UserHTTP{Svc: &service.UserService{Repo: rp}},
		Vehicles:  &VehicleHTTP{Svc: &service.VehicleService{Repo: rp}},
		Search:    &SearchHTTP{},
		Bookings:  &BookingHTTP{Svc: &service.BookingService{Repo: rp}},
		Payments:  &PaymentHTTP{Svc: &service.PaymentService{Repo: rp}},
		Tickets:   &TicketHTTP{Svc: &service.TicketService{Repo: rp}},
		Dashboard: &DashboardHTTP{Svc: &service.DashboardService{Repo: rp}},
	})

	return &testServer{T: t, E: e, DB: db, RP: rp}
}

func (s *testServer) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) decode(rec *httptest.ResponseRecorder) map[string]any {
	s.T.Helper()

	var out map[string]any
	require.NoError(s.T, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// seedUser inserts an account directly and returns it with a valid session
// token, bypassing the registration endpoint.
func (s *testServer) seedUser(email string, role models.Role) (*models.User, string) {
	s.T.Helper()

	pwHash, err := hash.HashPassword("Secret123")
	require.NoError(s.T, err)

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: pwHash,
		ContactPhone: "0123456789",
		Role:         role,
	}
	require.NoError(s.T, s.DB.Create(&user).Error)

	token, err := tokens.Issue(user.ID, user.Email, user.Role, testJWTSecret)
	require.NoError(s.T, err)
	return &user, token
}

func registerPayload(email string) map[string]any {
	return map[string]any{
		"first_name":    "Jane",
		"last_name":     "Doe",
		"email":         email,
		"password":      "Secret123",
		"contact_phone": "0123456789",
		"address":       "1 Main St",
	}
}
