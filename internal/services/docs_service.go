package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"drivent/internal/domain"
	"drivent/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the booking voucher PDF.
type DocsService struct {
	Bookings    BookingStore
	Rooms       RoomStore
	Enrollments EnrollmentStore
	RequestID   string
	Loader      func(ctx context.Context, userID int64) (voucherData, error)
}

type voucherData struct {
	BookingID    int64
	GuestName    string
	HotelName    string
	RoomName     string
	RoomCapacity int
	Occupants    int
	BookedAt     time.Time
}

func (s DocsService) GenerateVoucher(ctx context.Context, userID int64) ([]byte, string, error) {
	if userID <= 0 {
		return nil, "", domain.ValidationError{Field: "userId", Msg: "must be positive"}
	}
	data, err := s.loadVoucherData(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", data.BookingID))
	return buildVoucherPDF(data)
}

func (s DocsService) loadVoucherData(ctx context.Context, userID int64) (voucherData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, userID)
	}
	var out voucherData
	b, err := s.Bookings.FindWithRoomByUserID(ctx, userID)
	if err != nil {
		return out, err
	}
	out.BookingID = b.ID
	out.RoomName = b.Room.Name
	out.RoomCapacity = b.Room.Capacity
	out.BookedAt = b.UpdatedAt

	if hotel, err := s.Rooms.FindHotelByID(ctx, b.Room.HotelID); err == nil {
		out.HotelName = hotel.Name
	} else if !domain.IsNotFound(err) {
		return out, err
	}
	if n, err := s.Bookings.CountByRoomID(ctx, b.Room.ID); err == nil {
		out.Occupants = n
	}
	if e, err := s.Enrollments.FindWithAddressByUserID(ctx, userID); err == nil {
		out.GuestName = e.Name
	}
	return out, nil
}

func buildVoucherPDF(d voucherData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "HOTEL VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest      : %s", safe(d.GuestName, "-")),
		fmt.Sprintf("Hotel      : %s", safe(d.HotelName, "-")),
		fmt.Sprintf("Room       : %s", safe(d.RoomName, "-")),
		fmt.Sprintf("Occupancy  : %d / %d", d.Occupants, d.RoomCapacity),
		fmt.Sprintf("Booking    : #%d", d.BookingID),
		fmt.Sprintf("Booked at  : %s", bookedAt(d.BookedAt)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this voucher at the hotel front desk on arrival.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("voucher-booking-%d.pdf", d.BookingID), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func bookedAt(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}
