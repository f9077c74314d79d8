package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalops/vehicle_rental/internal/models"
)

var testSecret = []byte("test-jwt-secret")

func signWithExpiry(t *testing.T, exp time.Time, secret []byte) string {
	t.Helper()

	claims := SessionClaims{
		UserID: 42,
		Email:  "user@example.com",
		Role:   models.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestIssueParse_RoundTrip(t *testing.T) {
	t.Parallel()

	token, err := Issue(42, "user@example.com", models.RoleAdmin, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(SessionTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		exp     time.Time
		wantErr bool
	}{
		{name: "well before expiry", exp: time.Now().Add(time.Hour), wantErr: false},
		{name: "just before expiry", exp: time.Now().Add(5 * time.Second), wantErr: false},
		{name: "just past expiry", exp: time.Now().Add(-2 * time.Second), wantErr: true},
		{name: "long past expiry", exp: time.Now().Add(-SessionTTL), wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token := signWithExpiry(t, tt.exp, testSecret)
			claims, err := Parse(token, testSecret)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
			}
		})
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := Issue(1, "user@example.com", models.RoleUser, testSecret)
	require.NoError(t, err)

	claims, err := Parse(token, []byte("a-different-secret"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParse_TamperedToken(t *testing.T) {
	t.Parallel()

	token, err := Issue(1, "user@example.com", models.RoleUser, testSecret)
	require.NoError(t, err)

	// Flip one character in the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	claims, err := Parse(string(tampered), testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParse_MalformedToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-valid-jwt"},
		{name: "two segments", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := Parse(tt.token, testSecret)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestParse_ExpiredForgedToken(t *testing.T) {
	t.Parallel()

	// Expired and signed with the wrong key at once still collapses to the
	// same error as any other bad token.
	token := signWithExpiry(t, time.Now().Add(-time.Hour), []byte("attacker-secret"))

	claims, err := Parse(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParse_UnknownRole(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{
		UserID: 7,
		Email:  "user@example.com",
		Role:   "superadmin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	parsed, err := Parse(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, parsed)
}

func TestParse_MissingExpiry(t *testing.T) {
	t.Parallel()

	claims := SessionClaims{UserID: 7, Email: "user@example.com", Role: models.RoleUser}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	parsed, err := Parse(token, testSecret)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, parsed)
}
