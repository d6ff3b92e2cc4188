package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campusfleet/reservation-service/internal/model"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrBusRetired  = errors.New("Selected bus is no longer in service")
	ErrBusDisabled = errors.New("Bus is currently disabled in system by administrator")
)

// ValidationError carries every admission failure at once, in rule
// order, so the requester sees all problems in a single response.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Reasons, "; ")
}

// ConflictError reports an interval overlap on a bus.
type ConflictError struct {
	Windows []model.Window
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "reservation window conflicts with an existing booking"
}

type StateTransitionError struct {
	From   model.Status
	To     model.Status
	Reason string
}

func (e *StateTransitionError) Error() string {
	msg := fmt.Sprintf("illegal transition %s -> %s", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// RetireBlockedError is returned when a bus cannot be retired because
// pending or approved reservations still reference it.
type RetireBlockedError struct {
	BlockingIDs []int64
}

func (e *RetireBlockedError) Error() string {
	return fmt.Sprintf("bus has %d active reservation(s)", len(e.BlockingIDs))
}
