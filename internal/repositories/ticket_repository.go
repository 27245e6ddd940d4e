package repositories

import (
	"context"
	"database/sql"

	"drivent/internal/domain/models"
)

type TicketRepository struct {
	DB *sql.DB
}

// FindByEnrollmentID returns the enrollment's ticket with its type flags.
func (r TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (models.Ticket, error) {
	var (
		t      models.Ticket
		status string
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT t.id, t.ticket_type_id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = ?
		ORDER BY t.id
		LIMIT 1`, enrollmentID).Scan(
		&t.ID, &t.TicketTypeID, &t.EnrollmentID, &status, &t.CreatedAt, &t.UpdatedAt,
		&t.TicketType.ID, &t.TicketType.Name, &t.TicketType.Price, &t.TicketType.IsRemote, &t.TicketType.IncludesHotel,
	)
	if err != nil {
		return models.Ticket{}, wrapErr(err, "ticket", 0)
	}
	t.Status = models.TicketStatus(status)
	return t, nil
}
