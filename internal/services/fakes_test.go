package services

import (
	"context"

	"drivent/internal/domain"
	"drivent/internal/domain/models"
)

type fakeBookings struct {
	bookings  []models.Booking
	nextID    int64
	writes    int
	createErr error
}

func (f *fakeBookings) FindByUserID(_ context.Context, userID int64) (models.Booking, error) {
	for _, b := range f.bookings {
		if b.UserID == userID {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (f *fakeBookings) FindByID(_ context.Context, id int64) (models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: id}
}

func (f *fakeBookings) FindWithRoomByUserID(ctx context.Context, userID int64) (models.BookingWithRoom, error) {
	b, err := f.FindByUserID(ctx, userID)
	if err != nil {
		return models.BookingWithRoom{}, err
	}
	return models.BookingWithRoom{Booking: b, Room: roomsByID[b.RoomID]}, nil
}

func (f *fakeBookings) CountByRoomID(_ context.Context, roomID int64) (int, error) {
	n := 0
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookings) Create(_ context.Context, userID, roomID int64) (models.Booking, error) {
	if f.createErr != nil {
		return models.Booking{}, f.createErr
	}
	f.writes++
	f.nextID++
	b := models.Booking{ID: 100 + f.nextID, UserID: userID, RoomID: roomID}
	f.bookings = append(f.bookings, b)
	return b, nil
}

func (f *fakeBookings) Update(_ context.Context, bookingID, userID, roomID int64) (models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.writes++
			f.bookings[i].UserID = userID
			f.bookings[i].RoomID = roomID
			return f.bookings[i], nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: bookingID}
}

// fill puts n bookings from other users into roomID.
func (f *fakeBookings) fill(roomID int64, n int) {
	for i := 0; i < n; i++ {
		f.nextID++
		f.bookings = append(f.bookings, models.Booking{ID: 100 + f.nextID, UserID: 1000 + f.nextID, RoomID: roomID})
	}
}

// Rooms shared by every fixture: 1 has capacity 1, 2 capacity 2, 3 capacity 3.
var roomsByID = map[int64]models.Room{
	1: {ID: 1, HotelID: 1, Name: "101", Capacity: 1},
	2: {ID: 2, HotelID: 1, Name: "102", Capacity: 2},
	3: {ID: 3, HotelID: 1, Name: "201", Capacity: 3},
}

type fakeRooms struct{}

func (fakeRooms) FindByID(_ context.Context, id int64) (models.Room, error) {
	r, ok := roomsByID[id]
	if !ok {
		return models.Room{}, domain.NotFoundError{Resource: "room", ID: id}
	}
	return r, nil
}

func (fakeRooms) FindHotelByID(_ context.Context, id int64) (models.Hotel, error) {
	if id != 1 {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel", ID: id}
	}
	return models.Hotel{ID: 1, Name: "Driven Resort"}, nil
}

type fakeEnrollments map[int64]models.Enrollment

func (f fakeEnrollments) FindWithAddressByUserID(_ context.Context, userID int64) (models.Enrollment, error) {
	e, ok := f[userID]
	if !ok {
		return models.Enrollment{}, domain.NotFoundError{Resource: "enrollment"}
	}
	return e, nil
}

type fakeTickets map[int64]models.Ticket

func (f fakeTickets) FindByEnrollmentID(_ context.Context, enrollmentID int64) (models.Ticket, error) {
	t, ok := f[enrollmentID]
	if !ok {
		return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
	}
	return t, nil
}

type fakePayments map[int64]models.Payment

func (f fakePayments) FindByTicketID(_ context.Context, ticketID int64) (models.Payment, bool, error) {
	p, ok := f[ticketID]
	return p, ok, nil
}

type fixture struct {
	bookings    *fakeBookings
	rooms       fakeRooms
	enrollments fakeEnrollments
	tickets     fakeTickets
	payments    fakePayments
}

// newFixture has user 1 holding a paid, in-person ticket with hotel.
func newFixture() *fixture {
	return &fixture{
		bookings:    &fakeBookings{},
		enrollments: fakeEnrollments{1: {ID: 8, UserID: 1, Name: "Ana"}},
		tickets: fakeTickets{8: {
			ID:           4,
			EnrollmentID: 8,
			Status:       models.TicketPaid,
			TicketType:   models.TicketType{ID: 2, IsRemote: false, IncludesHotel: true},
		}},
		payments: fakePayments{4: {ID: 1, TicketID: 4, Value: 600}},
	}
}

func (f *fixture) service() BookingService {
	return BookingService{
		Bookings:    f.bookings,
		Rooms:       f.rooms,
		Enrollments: f.enrollments,
		Tickets:     f.tickets,
		Payments:    f.payments,
	}
}
