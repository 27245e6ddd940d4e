package services

import (
	"context"
	"errors"
	"fmt"

	"drivent/internal/domain"
	"drivent/internal/domain/models"
	"drivent/internal/utils"
)

// BookingService applies the hotel eligibility rule before a booking is
// created or moved. Copy it per request to set RequestID.
type BookingService struct {
	Bookings    BookingStore
	Rooms       RoomStore
	Enrollments EnrollmentStore
	Tickets     TicketStore
	Payments    PaymentStore
	RequestID   string
}

func (s BookingService) GetBooking(ctx context.Context, userID int64) (models.BookingWithRoom, error) {
	if userID <= 0 {
		return models.BookingWithRoom{}, domain.ValidationError{Field: "userId", Msg: "must be positive"}
	}
	return s.Bookings.FindWithRoomByUserID(ctx, userID)
}

func (s BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (models.Booking, error) {
	if err := validateIDs(userID, roomID); err != nil {
		return models.Booking{}, err
	}

	if err := s.checkTicket(ctx, userID); err != nil {
		s.logDenied("create", userID, roomID, err)
		return models.Booking{}, err
	}

	room, err := s.Rooms.FindByID(ctx, roomID)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.checkVacancy(ctx, room); err != nil {
		s.logDenied("create", userID, roomID, err)
		return models.Booking{}, err
	}

	b, err := s.Bookings.Create(ctx, userID, roomID)
	if err != nil {
		s.logDenied("create", userID, roomID, err)
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("booking_id=%d user_id=%d room_id=%d", b.ID, userID, roomID))
	return b, nil
}

// UpdateBooking moves bookingID into roomID. The booking must belong to userID.
func (s BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (models.Booking, error) {
	if err := validateIDs(userID, roomID); err != nil {
		return models.Booking{}, err
	}
	if bookingID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "bookingId", Msg: "must be positive"}
	}

	current, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return models.Booking{}, err
	}
	target := current
	if bookingID != current.ID {
		if target, err = s.Bookings.FindByID(ctx, bookingID); err != nil {
			return models.Booking{}, err
		}
	}
	if target.UserID != userID {
		err := domain.ForbiddenError{Rule: domain.RuleNotOwner, Msg: fmt.Sprintf("booking %d belongs to another user", bookingID)}
		s.logDenied("update", userID, roomID, err)
		return models.Booking{}, err
	}

	room, err := s.Rooms.FindByID(ctx, roomID)
	if err != nil {
		return models.Booking{}, roomMissingAsForbidden(err, roomID)
	}
	if err := s.checkVacancy(ctx, room); err != nil {
		s.logDenied("update", userID, roomID, err)
		return models.Booking{}, err
	}

	b, err := s.Bookings.Update(ctx, bookingID, userID, roomID)
	if err != nil {
		// the room can vanish between the check and the locked write
		if domain.IsNotFound(err) && !isBookingNotFound(err) {
			err = roomMissingAsForbidden(err, roomID)
		}
		s.logDenied("update", userID, roomID, err)
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "update", fmt.Sprintf("booking_id=%d user_id=%d room_id=%d from_room_id=%d", b.ID, userID, roomID, target.RoomID))
	return b, nil
}

// checkTicket walks enrollment -> ticket -> payment. Missing enrollment or
// ticket is NotFound; the rest are rule failures.
func (s BookingService) checkTicket(ctx context.Context, userID int64) error {
	enrollment, err := s.Enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return err
	}
	ticket, err := s.Tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}

	switch {
	case ticket.TicketType.IsRemote:
		return domain.ForbiddenError{Rule: domain.RuleRemoteTicket, Msg: "remote tickets cannot book a room"}
	case !ticket.TicketType.IncludesHotel:
		return domain.ForbiddenError{Rule: domain.RuleNoHotel, Msg: "ticket does not include hotel"}
	}

	_, paid, err := s.Payments.FindByTicketID(ctx, ticket.ID)
	if err != nil {
		return err
	}
	if !paid {
		return domain.ForbiddenError{Rule: domain.RuleUnpaid, Msg: "ticket has not been paid"}
	}
	return nil
}

func (s BookingService) checkVacancy(ctx context.Context, room models.Room) error {
	taken, err := s.Bookings.CountByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	if taken >= room.Capacity {
		return domain.ForbiddenError{Rule: domain.RuleRoomFull, Msg: fmt.Sprintf("room %d is full", room.ID)}
	}
	return nil
}

func (s BookingService) logDenied(action string, userID, roomID int64, err error) {
	utils.LogEvent(s.RequestID, "booking", action+"_denied", fmt.Sprintf("user_id=%d room_id=%d err=%v", userID, roomID, err))
}

func validateIDs(userID, roomID int64) error {
	if userID <= 0 {
		return domain.ValidationError{Field: "userId", Msg: "must be positive"}
	}
	if roomID <= 0 {
		return domain.ValidationError{Field: "roomId", Msg: "must be positive"}
	}
	return nil
}

func roomMissingAsForbidden(err error, roomID int64) error {
	if !domain.IsNotFound(err) {
		return err
	}
	// no Err: wrapping the NotFound would make IsNotFound match too
	return domain.ForbiddenError{Rule: domain.RuleRoomMissing, Msg: fmt.Sprintf("room %d does not exist", roomID)}
}

func isBookingNotFound(err error) bool {
	var nf domain.NotFoundError
	return errors.As(err, &nf) && nf.Resource == "booking"
}
