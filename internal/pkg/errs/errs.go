package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr so Is(err, markErr) holds while the cause chain stays
// available for logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether target sits in err's chain or was attached with Mark.
// Marks are invisible to the standard library errors.Is, so callers matching
// sentinels produced here must use this one.
func Is(err, target error) bool {
	return cr.Is(err, target)
}
