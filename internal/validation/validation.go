package validation

import (
	"errors"
	"fmt"
)

// Reason identifies why a guard rejected a remark
type Reason string

const (
	ReasonEmptyID          Reason = "empty_id"
	ReasonNotFound         Reason = "not_found"
	ReasonAlreadyExists    Reason = "already_exists"
	ReasonNotOwner         Reason = "not_owner"
	ReasonBurned           Reason = "burned"
	ReasonNotTransferable  Reason = "not_transferable"
	ReasonMissingMetadata  Reason = "missing_metadata"
	ReasonInvalidPrice     Reason = "invalid_price"
	ReasonNonPositivePrice Reason = "non_positive_price"
	ReasonIllegalBuy       Reason = "illegal_buy"
)

// Rejection is the error returned by a failing guard
type Rejection struct {
	Reason  Reason
	Message string
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("[%s] %s", r.Reason, r.Message)
}

func reject(reason Reason, format string, args ...any) error {
	return &Rejection{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// AsRejection extracts the Rejection from err, if any
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// IsRejection reports whether err carries a Rejection with the given reason
func IsRejection(err error, reason Reason) bool {
	r, ok := AsRejection(err)
	return ok && r.Reason == reason
}

// Check is a guard evaluated lazily, so a check may dereference an entity
// whose existence an earlier check in the same Run established.
type Check func() error

// Run evaluates the checks in order and returns the first failure
func Run(checks ...Check) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
