package services

import (
	"context"

	"drivent/internal/domain/models"
)

// BookingStore is implemented by repositories.BookingRepository.
type BookingStore interface {
	FindByUserID(ctx context.Context, userID int64) (models.Booking, error)
	FindByID(ctx context.Context, id int64) (models.Booking, error)
	FindWithRoomByUserID(ctx context.Context, userID int64) (models.BookingWithRoom, error)
	CountByRoomID(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, userID, roomID int64) (models.Booking, error)
	Update(ctx context.Context, bookingID, userID, roomID int64) (models.Booking, error)
}

type RoomStore interface {
	FindByID(ctx context.Context, id int64) (models.Room, error)
	FindHotelByID(ctx context.Context, id int64) (models.Hotel, error)
}

type EnrollmentStore interface {
	FindWithAddressByUserID(ctx context.Context, userID int64) (models.Enrollment, error)
}

type TicketStore interface {
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (models.Ticket, error)
}

// PaymentStore reports ok=false when a ticket has no payment.
type PaymentStore interface {
	FindByTicketID(ctx context.Context, ticketID int64) (models.Payment, bool, error)
}
