package framework

import "strings"

// AggregatedError collects errors from multiple runners into one.
type AggregatedError []error

// Error implements error.
func (e AggregatedError) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "multiple errors: " + strings.Join(msgs, "; ")
}

// Add collects non-nil errors.
func (e *AggregatedError) Add(errs ...error) {
	for _, err := range errs {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

// Aggregate returns nil when nothing was collected, the sole error when
// exactly one was, and the aggregate otherwise.
func (e AggregatedError) Aggregate() error {
	switch len(e) {
	case 0:
		return nil
	case 1:
		return e[0]
	}
	return e
}
