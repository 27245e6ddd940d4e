package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"drivent/internal/auth"
	intdb "drivent/internal/db"

	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@drivent.local"
	demoPassword = "demo1234"
)

// SeedResult reports what SeedDatabase wrote.
type SeedResult struct {
	Skipped bool
	UserID  int64
	RoomIDs []int64
	Token   string
}

type demoRoom struct {
	name     string
	capacity int
}

var demoRooms = []demoRoom{
	{"101", 1},
	{"102", 2},
	{"201", 3},
}

// SeedDatabase inserts one eligible attendee (paid, in-person, hotel
// included) plus a hotel with a few rooms. It does nothing when users exist.
func SeedDatabase(ctx context.Context, db *sql.DB, jwtSecret string) (SeedResult, error) {
	var out SeedResult
	if db == nil {
		return out, fmt.Errorf("db not connected")
	}

	var userCount int64
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return out, fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		log.Println("info: users already seeded")
		out.Skipped = true
		return out, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return out, fmt.Errorf("hash demo password: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return out, fmt.Errorf("begin seed: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	insert := func(query string, args ...any) (int64, error) {
		res, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			return 0, execErr
		}
		return res.LastInsertId()
	}

	if out.UserID, err = insert(`INSERT INTO users (email, password) VALUES (?, ?)`, demoEmail, string(hash)); err != nil {
		return out, fmt.Errorf("seed user: %w", err)
	}

	enrollmentID, err := insert(`
		INSERT INTO enrollments (user_id, name, cpf, birthday, phone)
		VALUES (?, ?, ?, ?, ?)`,
		out.UserID, "Demo Attendee", "12345678909", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "(21) 98999-9999")
	if err != nil {
		return out, fmt.Errorf("seed enrollment: %w", err)
	}

	if _, err = insert(`
		INSERT INTO addresses (enrollment_id, cep, street, city, state, number, neighborhood, address_detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		enrollmentID, "22250-040", "Praia de Botafogo", "Rio de Janeiro", "RJ", "300", "Botafogo", intdb.NullIfEmpty("")); err != nil {
		return out, fmt.Errorf("seed address: %w", err)
	}

	ticketTypeID, err := insert(`
		INSERT INTO ticket_types (name, price, is_remote, includes_hotel)
		VALUES (?, ?, ?, ?)`, "Presencial + Hotel", 60000, false, true)
	if err != nil {
		return out, fmt.Errorf("seed ticket type: %w", err)
	}

	ticketID, err := insert(`
		INSERT INTO tickets (ticket_type_id, enrollment_id, status)
		VALUES (?, ?, ?)`, ticketTypeID, enrollmentID, "PAID")
	if err != nil {
		return out, fmt.Errorf("seed ticket: %w", err)
	}

	if _, err = insert(`
		INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits)
		VALUES (?, ?, ?, ?)`, ticketID, 60000, "VISA", "4242"); err != nil {
		return out, fmt.Errorf("seed payment: %w", err)
	}

	hotelID, err := insert(`INSERT INTO hotels (name, image) VALUES (?, ?)`,
		"Driven Resort", "https://example.com/driven-resort.jpg")
	if err != nil {
		return out, fmt.Errorf("seed hotel: %w", err)
	}

	for _, r := range demoRooms {
		var roomID int64
		if roomID, err = insert(`INSERT INTO rooms (hotel_id, name, capacity) VALUES (?, ?, ?)`,
			hotelID, r.name, r.capacity); err != nil {
			return out, fmt.Errorf("seed room %s: %w", r.name, err)
		}
		out.RoomIDs = append(out.RoomIDs, roomID)
	}

	if out.Token, err = auth.Sign(jwtSecret, out.UserID, 0); err != nil {
		return out, fmt.Errorf("sign demo token: %w", err)
	}
	if _, err = insert(`INSERT INTO sessions (user_id, token) VALUES (?, ?)`, out.UserID, out.Token); err != nil {
		return out, fmt.Errorf("seed session: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return out, fmt.Errorf("commit seed: %w", err)
	}

	log.Printf("info: demo data seeded user=%s rooms=%v", demoEmail, out.RoomIDs)
	return out, nil
}
