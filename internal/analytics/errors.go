package analytics

import (
	"errors"
	"fmt"
)

var (
	ErrNoBudget      = errors.New("no budget set for this month")
	ErrInvalidRecord = errors.New("invalid record")

	errDuplicateMonth = errors.New("more than one budget for the month")
	errOutsideMonth   = errors.New("the date is not in the requested month")
)

// InvalidRecordError identifies a stored record that cannot be aggregated.
type InvalidRecordError struct {
	Kind string // "budget" or "expense"
	ID   string // ID of the expense or month of the budget
	Err  error
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrInvalidRecord, e.Kind, e.ID, e.Err)
}

func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

func (e *InvalidRecordError) Unwrap() error {
	return e.Err
}
