package repositories

import (
	"context"
	"database/sql"
	"errors"

	"drivent/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

// FindByTicketID reports ok=false when the ticket has no payment.
func (r PaymentRepository) FindByTicketID(ctx context.Context, ticketID int64) (models.Payment, bool, error) {
	var p models.Payment
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at
		FROM payments
		WHERE ticket_id = ?
		ORDER BY id
		LIMIT 1`, ticketID).Scan(&p.ID, &p.TicketID, &p.Value, &p.CardIssuer, &p.CardLastDigits, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, false, nil
	}
	if err != nil {
		return models.Payment{}, false, wrapErr(err, "payment", ticketID)
	}
	return p, true, nil
}
