package handlers

import (
	"context"
	"net/http"

	"drivent/internal/domain/models"
	"drivent/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// BookingEvaluator is implemented by services.BookingService.
type BookingEvaluator interface {
	GetBooking(ctx context.Context, userID int64) (models.BookingWithRoom, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (models.Booking, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (models.Booking, error)
}

// VoucherGenerator is implemented by services.DocsService.
type VoucherGenerator interface {
	GenerateVoucher(ctx context.Context, userID int64) ([]byte, string, error)
}

// BookingHandler serves /bookings. The factories receive the request id so
// services can tag their log lines.
type BookingHandler struct {
	Evaluator func(requestID string) BookingEvaluator
	Vouchers  func(requestID string) VoucherGenerator
}

type bookingRequest struct {
	RoomID int64 `json:"roomId" binding:"required,gt=0"`
}

// GET /bookings
func (h BookingHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)
	b, err := h.Evaluator(middleware.GetRequestID(c)).GetBooking(c.Request.Context(), userID)
	if err != nil {
		readMapping.respond(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /bookings
func (h BookingHandler) Create(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := h.Evaluator(middleware.GetRequestID(c)).CreateBooking(c.Request.Context(), userID, req.RoomID)
	if err != nil {
		writeMapping.respond(c, "booking", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /bookings/:bookingId
func (h BookingHandler) Update(c *gin.Context) {
	userID, ok := requireCaller(c)
	if !ok {
		return
	}
	bookingID, ok := paramID(c, "bookingId")
	if !ok {
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := h.Evaluator(middleware.GetRequestID(c)).UpdateBooking(c.Request.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		writeMapping.respond(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, models.UpdateResult{BookingID: b.ID})
}

// GET /bookings/voucher returns the booking voucher inline.
func (h BookingHandler) Voucher(c *gin.Context) {
	userID := middleware.UserID(c)
	pdf, filename, err := h.Vouchers(middleware.GetRequestID(c)).GenerateVoucher(c.Request.Context(), userID)
	if err != nil {
		readMapping.respond(c, "docs", err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func requireCaller(c *gin.Context) (int64, bool) {
	userID := middleware.UserID(c)
	if userID <= 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "missing caller identity", gin.H{"field": "userId"})
		return 0, false
	}
	return userID, true
}
