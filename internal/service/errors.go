package service

import "errors"

// ErrorKind is the closed set of business rejections the booking core produces.
// Transport layers decide how each kind is surfaced.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindNotEligible
	KindFullCapacity
	KindForbidden
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindNotEligible:
		return "not_eligible"
	case KindFullCapacity:
		return "full_capacity"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrEnrollmentNotFound = &Error{Kind: KindNotFound, Message: "enrollment not found"}
	ErrRoomNotFound       = &Error{Kind: KindNotFound, Message: "room not found"}
	ErrBookingNotFound    = &Error{Kind: KindNotFound, Message: "booking not found"}
	ErrNotEligible        = &Error{Kind: KindNotEligible, Message: "ticket does not allow hotel booking"}
	ErrFullCapacity       = &Error{Kind: KindFullCapacity, Message: "room full capacity reached"}
	ErrNotBookingOwner    = &Error{Kind: KindForbidden, Message: "booking does not belong to user"}
	ErrAlreadyBooked      = &Error{Kind: KindForbidden, Message: "user already has a booking"}
)

// KindOf reports the kind of a business rejection. ok is false for any other
// error, which callers should treat as an internal failure.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
