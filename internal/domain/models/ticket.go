package models

import "time"

// TicketStatus mirrors the tickets.status column.
type TicketStatus string

const (
	TicketReserved TicketStatus = "RESERVED"
	TicketPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

// QualifiesForHotel reports whether the ticket type may book a room at all.
func (t TicketType) QualifiesForHotel() bool {
	return !t.IsRemote && t.IncludesHotel
}

type Ticket struct {
	ID           int64        `json:"id"`
	TicketTypeID int64        `json:"ticketTypeId"`
	EnrollmentID int64        `json:"enrollmentId"`
	Status       TicketStatus `json:"status"`
	TicketType   TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Payment struct {
	ID             int64     `json:"id"`
	TicketID       int64     `json:"ticketId"`
	Value          int64     `json:"value"`
	CardIssuer     string    `json:"cardIssuer"`
	CardLastDigits string    `json:"cardLastDigits"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Address struct {
	ID            int64  `json:"id"`
	CEP           string `json:"cep"`
	Street        string `json:"street"`
	City          string `json:"city"`
	State         string `json:"state"`
	Number        string `json:"number"`
	Neighborhood  string `json:"neighborhood"`
	AddressDetail string `json:"addressDetail"`
}

// Enrollment is a user's registration for the event. Address may be absent.
type Enrollment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `json:"phone"`
	Address   *Address  `json:"Address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
