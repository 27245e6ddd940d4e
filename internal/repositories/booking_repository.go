package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"drivent/internal/domain"
	"drivent/internal/domain/models"
)

const bookingColumns = `id, user_id, room_id, created_at, updated_at`

type BookingRepository struct {
	DB *sql.DB
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// FindByUserID returns the user's booking. Users hold at most one; the oldest wins.
func (r BookingRepository) FindByUserID(ctx context.Context, userID int64) (models.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE user_id = ?
		ORDER BY id
		LIMIT 1`, userID)
	b, err := scanBooking(row)
	if err != nil {
		return models.Booking{}, wrapErr(err, "booking", 0)
	}
	return b, nil
}

func (r BookingRepository) FindByID(ctx context.Context, id int64) (models.Booking, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ? LIMIT 1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return models.Booking{}, wrapErr(err, "booking", id)
	}
	return b, nil
}

// FindWithRoomByUserID joins the user's booking to its room.
func (r BookingRepository) FindWithRoomByUserID(ctx context.Context, userID int64) (models.BookingWithRoom, error) {
	var out models.BookingWithRoom
	err := r.DB.QueryRowContext(ctx, `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.hotel_id, r.name, r.capacity, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = ?
		ORDER BY b.id
		LIMIT 1`, userID).Scan(
		&out.ID, &out.UserID, &out.RoomID, &out.CreatedAt, &out.UpdatedAt,
		&out.Room.ID, &out.Room.HotelID, &out.Room.Name, &out.Room.Capacity, &out.Room.CreatedAt, &out.Room.UpdatedAt,
	)
	if err != nil {
		return models.BookingWithRoom{}, wrapErr(err, "booking", 0)
	}
	return out, nil
}

func (r BookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = ?`, roomID).Scan(&n); err != nil {
		return 0, wrapErr(err, "bookings", roomID)
	}
	return n, nil
}

// Create inserts a booking while holding the room row lock, so two callers
// cannot both take the last place.
func (r BookingRepository) Create(ctx context.Context, userID, roomID int64) (models.Booking, error) {
	now := time.Now().UTC().Truncate(time.Second)
	var out models.Booking

	err := r.withRoomLock(ctx, roomID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO bookings (user_id, room_id, created_at, updated_at)
			VALUES (?, ?, ?, ?)`, userID, roomID, now, now)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		out = models.Booking{ID: id, UserID: userID, RoomID: roomID, CreatedAt: now, UpdatedAt: now}
		return nil
	})
	if err != nil {
		return models.Booking{}, wrapErr(err, "booking", 0)
	}
	return out, nil
}

// Update moves bookingID to roomID (and userID) under the same lock as Create.
func (r BookingRepository) Update(ctx context.Context, bookingID, userID, roomID int64) (models.Booking, error) {
	now := time.Now().UTC().Truncate(time.Second)
	var out models.Booking

	err := r.withRoomLock(ctx, roomID, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			UPDATE bookings SET room_id = ?, user_id = ?, updated_at = ?
			WHERE id = ?`, roomID, userID, now, bookingID); err != nil {
			return err
		}
		b, err := scanBooking(tx.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, bookingID))
		if err != nil {
			return wrapErr(err, "booking", bookingID)
		}
		out = b
		return nil
	})
	if err != nil {
		return models.Booking{}, wrapErr(err, "booking", bookingID)
	}
	return out, nil
}

// withRoomLock runs fn in a transaction after locking the room and checking
// it still has a free place.
func (r BookingRepository) withRoomLock(ctx context.Context, roomID int64, fn func(*sql.Tx) error) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var capacity int
	if err = tx.QueryRowContext(ctx, `SELECT capacity FROM rooms WHERE id = ? FOR UPDATE`, roomID).Scan(&capacity); err != nil {
		return wrapErr(err, "room", roomID)
	}
	var taken int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = ?`, roomID).Scan(&taken); err != nil {
		return err
	}
	if taken >= capacity {
		err = domain.ForbiddenError{Rule: domain.RuleRoomFull, Msg: fmt.Sprintf("room %d is full", roomID)}
		return err
	}

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
