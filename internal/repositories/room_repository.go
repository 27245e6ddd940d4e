package repositories

import (
	"context"
	"database/sql"

	"drivent/internal/domain/models"
)

type RoomRepository struct {
	DB *sql.DB
}

func (r RoomRepository) FindByID(ctx context.Context, id int64) (models.Room, error) {
	var room models.Room
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, hotel_id, name, capacity, created_at, updated_at
		FROM rooms
		WHERE id = ?
		LIMIT 1`, id).Scan(&room.ID, &room.HotelID, &room.Name, &room.Capacity, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return models.Room{}, wrapErr(err, "room", id)
	}
	return room, nil
}

func (r RoomRepository) FindHotelByID(ctx context.Context, id int64) (models.Hotel, error) {
	var h models.Hotel
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, image, created_at, updated_at
		FROM hotels
		WHERE id = ?
		LIMIT 1`, id).Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return models.Hotel{}, wrapErr(err, "hotel", id)
	}
	return h, nil
}
