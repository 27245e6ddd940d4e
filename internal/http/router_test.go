package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drivent/internal/auth"
	"drivent/internal/config"
	"drivent/internal/domain"
	"drivent/internal/domain/models"
	h "drivent/internal/http/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const routerSecret = "router-secret"

type sessionsFor map[string]int64

func (s sessionsFor) Exists(_ context.Context, userID int64, token string) (bool, error) {
	return s[token] == userID, nil
}

// stubEvaluator books every room for the caller and has nothing to show on GET.
type stubEvaluator struct{}

func (stubEvaluator) GetBooking(context.Context, int64) (models.BookingWithRoom, error) {
	return models.BookingWithRoom{}, domain.NotFoundError{Resource: "booking"}
}

func (stubEvaluator) CreateBooking(_ context.Context, userID, roomID int64) (models.Booking, error) {
	return models.Booking{ID: 1, UserID: userID, RoomID: roomID}, nil
}

func (stubEvaluator) UpdateBooking(_ context.Context, userID, roomID, bookingID int64) (models.Booking, error) {
	return models.Booking{ID: bookingID, UserID: userID, RoomID: roomID}, nil
}

func testRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tok, err := auth.Sign(routerSecret, 9, 0)
	require.NoError(t, err)

	env := config.Env{JWTSecret: routerSecret}
	r := NewRouter(env, Deps{
		Bookings: h.BookingHandler{
			Evaluator: func(string) h.BookingEvaluator { return stubEvaluator{} },
		},
		Sessions: sessionsFor{tok: 9},
		Ping:     func(context.Context) error { return nil },
	})
	return r, tok
}

func serve(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterBookingsRequireAuth(t *testing.T) {
	r, _ := testRouter(t)
	for _, rt := range []struct{ method, path string }{
		{http.MethodGet, "/bookings"},
		{http.MethodPost, "/bookings"},
		{http.MethodPut, "/bookings/1"},
		{http.MethodGet, "/bookings/voucher"},
	} {
		w := serve(r, rt.method, rt.path, "", `{"roomId":1}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", rt.method, rt.path)
	}
}

func TestRouterAuthenticatedFlow(t *testing.T) {
	r, tok := testRouter(t)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/bookings", tok, "").Code)

	w := serve(r, http.MethodPost, "/bookings", tok, `{"roomId":4}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":9`)

	w = serve(r, http.MethodPut, "/bookings/1", tok, `{"roomId":5}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookingId":1}`, w.Body.String())
}

func TestRouterHealthAndNoRoute(t *testing.T) {
	r, _ := testRouter(t)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health/db", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/nope", "", "").Code)
}
