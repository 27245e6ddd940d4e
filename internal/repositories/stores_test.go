package repositories

import (
	"context"
	"testing"
	"time"

	"drivent/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRoomFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	now := time.Now().UTC()

	mock.ExpectQuery("FROM rooms").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "name", "capacity", "created_at", "updated_at"}).
			AddRow(5, 1, "101", 2, now, now))
	mock.ExpectQuery("FROM rooms").WithArgs(int64(6)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := RoomRepository{DB: db}
	room, err := repo.FindByID(context.Background(), 5)
	if err != nil || room.Capacity != 2 || room.HotelID != 1 {
		t.Fatalf("FindByID = %+v, %v", room, err)
	}
	if _, err := repo.FindByID(context.Background(), 6); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestRoomFindHotelByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	now := time.Now().UTC()

	mock.ExpectQuery("FROM hotels").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "created_at", "updated_at"}).
			AddRow(1, "Driven Resort", "img.jpg", now, now))

	h, err := RoomRepository{DB: db}.FindHotelByID(context.Background(), 1)
	if err != nil || h.Name != "Driven Resort" {
		t.Fatalf("FindHotelByID = %+v, %v", h, err)
	}
}

func TestEnrollmentWithAndWithoutAddress(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	now := time.Now().UTC()
	cols := []string{
		"e.id", "e.user_id", "e.name", "e.cpf", "e.birthday", "e.phone", "e.created_at", "e.updated_at",
		"a.id", "a.cep", "a.street", "a.city", "a.state", "a.number", "a.neighborhood", "a.address_detail",
	}

	mock.ExpectQuery("LEFT JOIN addresses").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(8, 3, "Ana", "123", now, "999", now, now, 1, "22250-040", "Rua A", "Rio", "RJ", "10", "Centro", nil))
	mock.ExpectQuery("LEFT JOIN addresses").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(9, 4, "Bia", "456", now, "888", now, now, nil, nil, nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery("LEFT JOIN addresses").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(cols))

	repo := EnrollmentRepository{DB: db}
	e, err := repo.FindWithAddressByUserID(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindWithAddressByUserID error: %v", err)
	}
	if e.ID != 8 || e.Address == nil || e.Address.City != "Rio" || e.Address.AddressDetail != "" {
		t.Fatalf("unexpected enrollment %+v", e)
	}

	e, err = repo.FindWithAddressByUserID(context.Background(), 4)
	if err != nil || e.Address != nil {
		t.Fatalf("expected enrollment without address, got %+v, %v", e, err)
	}

	if _, err := repo.FindWithAddressByUserID(context.Background(), 5); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestTicketFindByEnrollmentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	now := time.Now().UTC()

	mock.ExpectQuery("JOIN ticket_types").WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{
			"t.id", "t.ticket_type_id", "t.enrollment_id", "t.status", "t.created_at", "t.updated_at",
			"tt.id", "tt.name", "tt.price", "tt.is_remote", "tt.includes_hotel",
		}).AddRow(4, 2, 8, "PAID", now, now, 2, "Hotel", 600, false, true))

	tk, err := TicketRepository{DB: db}.FindByEnrollmentID(context.Background(), 8)
	if err != nil {
		t.Fatalf("FindByEnrollmentID error: %v", err)
	}
	if tk.ID != 4 || tk.Status != "PAID" || !tk.TicketType.QualifiesForHotel() {
		t.Fatalf("unexpected ticket %+v", tk)
	}
}

func TestPaymentFindByTicketID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	now := time.Now().UTC()

	mock.ExpectQuery("FROM payments").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticket_id", "value", "card_issuer", "card_last_digits", "created_at"}).
			AddRow(1, 4, 600, "VISA", "4242", now))
	mock.ExpectQuery("FROM payments").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := PaymentRepository{DB: db}
	p, ok, err := repo.FindByTicketID(context.Background(), 4)
	if err != nil || !ok || p.CardLastDigits != "4242" {
		t.Fatalf("FindByTicketID = %+v, %v, %v", p, ok, err)
	}
	_, ok, err = repo.FindByTicketID(context.Background(), 5)
	if err != nil || ok {
		t.Fatalf("expected missing payment without error, got ok=%v err=%v", ok, err)
	}
}

func TestSessionExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM sessions WHERE user_id = \\? AND token = \\?").WithArgs(int64(3), "tok").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM sessions").WithArgs(int64(3), "gone").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := SessionRepository{DB: db}
	if ok, err := repo.Exists(context.Background(), 3, "tok"); err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
	if ok, err := repo.Exists(context.Background(), 3, "gone"); err != nil || ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}
}
