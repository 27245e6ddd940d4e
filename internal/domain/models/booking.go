package models

import "time"

// Booking links one user to one room.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RoomID    int64     `json:"roomId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Room is a hotel room; Capacity caps simultaneous bookings.
type Room struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotelId"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWithRoom is a booking with its room attached, as returned by GET /bookings.
type BookingWithRoom struct {
	Booking
	Room Room `json:"Room"`
}

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateResult is the body of a successful PUT /bookings/:bookingId.
type UpdateResult struct {
	BookingID int64 `json:"bookingId"`
}
