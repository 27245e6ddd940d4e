package repositories

import (
	"context"
	"database/sql"

	"drivent/internal/domain/models"
)

type EnrollmentRepository struct {
	DB *sql.DB
}

// FindWithAddressByUserID loads the enrollment and, when present, its address.
func (r EnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (models.Enrollment, error) {
	var (
		e       models.Enrollment
		addrID  sql.NullInt64
		addrCol [7]sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at, e.updated_at,
		       a.id, a.cep, a.street, a.city, a.state, a.number, a.neighborhood, a.address_detail
		FROM enrollments e
		LEFT JOIN addresses a ON a.enrollment_id = e.id
		WHERE e.user_id = ?
		LIMIT 1`, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt,
		&addrID, &addrCol[0], &addrCol[1], &addrCol[2], &addrCol[3], &addrCol[4], &addrCol[5], &addrCol[6],
	)
	if err != nil {
		return models.Enrollment{}, wrapErr(err, "enrollment", 0)
	}
	if addrID.Valid {
		e.Address = &models.Address{
			ID:            addrID.Int64,
			CEP:           addrCol[0].String,
			Street:        addrCol[1].String,
			City:          addrCol[2].String,
			State:         addrCol[3].String,
			Number:        addrCol[4].String,
			Neighborhood:  addrCol[5].String,
			AddressDetail: addrCol[6].String,
		}
	}
	return e, nil
}
