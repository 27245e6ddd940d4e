package repositories

import (
	"database/sql"
	"errors"

	"drivent/internal/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// wrapErr turns sql.ErrNoRows into NotFoundError and anything else into InternalError.
func wrapErr(err error, resource string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, ID: id, Err: err}
	}
	var (
		nf domain.NotFoundError
		fb domain.ForbiddenError
	)
	if errors.As(err, &nf) || errors.As(err, &fb) {
		return err
	}
	return domain.InternalError{Msg: "query " + resource, Err: err}
}
