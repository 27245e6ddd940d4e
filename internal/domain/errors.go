package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Resource == "":
		return "not found"
	case e.ID > 0:
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	default:
		return fmt.Sprintf("%s not found", e.Resource)
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError is a malformed or missing request input.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ForbiddenError is a business rule that denied the operation.
type ForbiddenError struct {
	Rule string
	Msg  string
	Err  error
}

func (e ForbiddenError) Error() string {
	switch {
	case e.Msg != "" && e.Rule != "":
		return fmt.Sprintf("forbidden (%s): %s", e.Rule, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Rule != "":
		return fmt.Sprintf("forbidden (%s)", e.Rule)
	default:
		return "forbidden"
	}
}

func (e ForbiddenError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// Rule names carried by ForbiddenError.
const (
	RuleRemoteTicket  = "remote_ticket"
	RuleNoHotel       = "ticket_without_hotel"
	RuleUnpaid        = "ticket_not_paid"
	RuleRoomFull      = "room_full"
	RuleRoomMissing   = "room_missing"
	RuleNotOwner      = "booking_not_owned"
	RuleMissingCaller = "missing_identity"
)

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
