package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "parking_backend/internal/feature/auth/adapters"
	authentity "parking_backend/internal/feature/auth/domain/entity"
	authhandler "parking_backend/internal/feature/auth/transport/handler"
	authusecase "parking_backend/internal/feature/auth/usecase"
	parkingadapters "parking_backend/internal/feature/parkinglot/adapters"
	parkingentity "parking_backend/internal/feature/parkinglot/domain/entity"
	parkinghandler "parking_backend/internal/feature/parkinglot/transport/handler"
	parkingusecase "parking_backend/internal/feature/parkinglot/usecase"
	jwtmw "parking_backend/internal/platform/jwt"
)

// newTestServer wires the whole stack against an in-memory database, the same
// way cmd/server does against Postgres.
func newTestServer(t *testing.T) (*gin.Engine, *authusecase.AuthUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv(jwtmw.EnvKeyJWTSecret, "flow-test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authentity.User{}, &parkingentity.ParkingLot{}, &parkingentity.Spot{}))

	users := authadapters.NewUserRepository(db)
	lots := parkingadapters.NewParkingLotRepository(db)
	spots := parkingadapters.NewSpotRepository(db)

	authUC := authusecase.NewAuthUsecase(users, jwtmw.NewGenerator("flow-test-secret", time.Hour))
	lotUC := parkingusecase.NewParkingLotUsecase(lots, users)
	spotUC := parkingusecase.NewSpotUsecase(spots, lots)

	r := NewRouter(
		authhandler.NewAuthHandler(authUC),
		parkinghandler.NewParkingLotHandler(lotUC),
		parkinghandler.NewSpotHandler(spotUC),
	)
	return r, authUC
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login signs a user in through the HTTP surface and returns the bearer token.
func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestFlow_Unauthenticated(t *testing.T) {
	r, _ := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/parkinglots"},
		{http.MethodPost, "/parkinglots"},
		{http.MethodGet, "/parkinglots/1"},
		{http.MethodPut, "/parkinglots/1"},
		{http.MethodPatch, "/parkinglots/1"},
		{http.MethodDelete, "/parkinglots/1"},
		{http.MethodGet, "/parkinglots/1/spots"},
		{http.MethodPost, "/parkinglots/1/spots"},
		{http.MethodGet, "/spots/1"},
		{http.MethodPatch, "/spots/1"},
		{http.MethodDelete, "/spots/1"},
	}

	for _, rt := range routes {
		t.Run(fmt.Sprintf("%s %s", rt.method, rt.path), func(t *testing.T) {
			w := do(t, r, rt.method, rt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestFlow_Health(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodGet, "/healthz", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// TestFlow_ParkingLots walks the whole lot lifecycle through the real stack:
// an admin creates a lot, everyone can read it, a regular user cannot create,
// and a rename leaves the address untouched.
func TestFlow_ParkingLots(t *testing.T) {
	r, authUC := newTestServer(t)

	_, err := authUC.CreateSuperuser(context.Background(), "admin@example.com", "adminpass123")
	require.NoError(t, err)
	admin := login(t, r, "admin@example.com", "adminpass123")

	w := do(t, r, http.MethodPost, "/signup", "",
		gin.H{"email": "user@example.com", "password": "userpass123", "name": "User"})
	require.Equal(t, http.StatusCreated, w.Code)
	user := login(t, r, "user@example.com", "userpass123")

	// Admin creates a lot.
	w = do(t, r, http.MethodPost, "/parkinglots", admin, gin.H{"name": "Lot1", "address": "Addr1"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Lot1","address":"Addr1"}`, w.Body.String())

	// Both users can list it.
	for _, token := range []string{admin, user} {
		w = do(t, r, http.MethodGet, "/parkinglots", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Lot1","address":"Addr1"}]`, w.Body.String())
	}

	// A regular user cannot create one.
	w = do(t, r, http.MethodPost, "/parkinglots", user, gin.H{"name": "Lot2", "address": "Addr2"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, r, http.MethodGet, "/parkinglots", user, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Lot1","address":"Addr1"}]`, w.Body.String(),
		"rejected create must not persist anything")

	// Partial update keeps the untouched field.
	w = do(t, r, http.MethodPatch, "/parkinglots/1", admin, gin.H{"name": "Lot1-renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Lot1-renamed","address":"Addr1"}`, w.Body.String())

	// Full replace requires both fields.
	w = do(t, r, http.MethodPut, "/parkinglots/1", admin, gin.H{"name": "OnlyName"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/parkinglots/1", admin, gin.H{"name": "Lot1-v2", "address": "Addr1-v2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Lot1-v2","address":"Addr1-v2"}`, w.Body.String())

	// Delete, then reads answer 404.
	w = do(t, r, http.MethodDelete, "/parkinglots/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/parkinglots/1", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/parkinglots", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// TestFlow_Spots covers the spot lifecycle under a lot, including the cascade
// when the lot goes away.
func TestFlow_Spots(t *testing.T) {
	r, authUC := newTestServer(t)

	_, err := authUC.CreateSuperuser(context.Background(), "admin@example.com", "adminpass123")
	require.NoError(t, err)
	admin := login(t, r, "admin@example.com", "adminpass123")

	w := do(t, r, http.MethodPost, "/parkinglots", admin, gin.H{"name": "Lot1", "address": "Addr1"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Type defaults to CAR, occupied to false.
	w = do(t, r, http.MethodPost, "/parkinglots/1/spots", admin, gin.H{"price_per_hour": "2.50"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t,
		`{"id":1,"spot_type":"CAR","price_per_hour":"2.50","parking_lot":1,"occupied":false}`,
		w.Body.String())

	w = do(t, r, http.MethodPost, "/parkinglots/1/spots", admin,
		gin.H{"spot_type": "BIKE", "price_per_hour": "1.00", "occupied": true})
	require.Equal(t, http.StatusCreated, w.Code)

	// Spots under an unknown lot answer 404.
	w = do(t, r, http.MethodPost, "/parkinglots/42/spots", admin, gin.H{"price_per_hour": "2.50"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Out-of-range price answers 400.
	w = do(t, r, http.MethodPost, "/parkinglots/1/spots", admin, gin.H{"price_per_hour": "1000000.00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/parkinglots/1/spots", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"id":1,"spot_type":"CAR","price_per_hour":"2.50","parking_lot":1,"occupied":false},
		  {"id":2,"spot_type":"BIKE","price_per_hour":"1.00","parking_lot":1,"occupied":true}]`,
		w.Body.String())

	// Occupancy toggle through PATCH.
	w = do(t, r, http.MethodPatch, "/spots/1", admin, gin.H{"occupied": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"id":1,"spot_type":"CAR","price_per_hour":"2.50","parking_lot":1,"occupied":true}`,
		w.Body.String())

	w = do(t, r, http.MethodDelete, "/spots/2", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Deleting the lot removes its remaining spots.
	w = do(t, r, http.MethodDelete, "/parkinglots/1", admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/spots/1", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestFlow_SignupAndLogin exercises the public auth surface end to end.
func TestFlow_SignupAndLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, http.MethodPost, "/signup", "",
		gin.H{"email": "user@Example.COM", "password": "userpass123", "name": "User"})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email (after domain normalization) answers 409.
	w = do(t, r, http.MethodPost, "/signup", "",
		gin.H{"email": "user@example.com", "password": "otherpass123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login works with the normalized address.
	login(t, r, "user@example.com", "userpass123")

	// Wrong password answers 401.
	w = do(t, r, http.MethodPost, "/login", "",
		gin.H{"email": "user@example.com", "password": "wrongpass123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
