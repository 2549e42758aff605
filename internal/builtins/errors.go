package builtins

import (
	"fmt"

	"github.com/dicescript/dicescript/internal/errors"
)

// kindedError carries an error-kind classification for an intrinsic
// failure without yet knowing the call's source position — intrinsics
// run underneath the evaluator, which attaches position when it
// re-raises the failure as an errors.Error (see internal/evaluator).
type kindedError struct {
	Kind    errors.Kind
	Message string
}

func (e *kindedError) Error() string { return e.Message }

func arityErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindArity, Message: fmt.Sprintf(format, args...)}
}

func typeErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindType, Message: fmt.Sprintf(format, args...)}
}

func domainErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindDomain, Message: fmt.Sprintf(format, args...)}
}

func keyErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindKey, Message: fmt.Sprintf(format, args...)}
}

func rngErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindRng, Message: fmt.Sprintf(format, args...)}
}

func ioErrorf(format string, args ...any) error {
	return &kindedError{Kind: errors.KindIo, Message: fmt.Sprintf(format, args...)}
}

// Kind extracts the error-kind classification from err, if it was raised
// by this package; ok is false for any other error.
func Kind(err error) (errors.Kind, bool) {
	if ke, ok := err.(*kindedError); ok {
		return ke.Kind, true
	}
	return "", false
}
