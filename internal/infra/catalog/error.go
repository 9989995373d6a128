package catalog

import (
	"errors"

	"dropdeck/internal/pkg/errs"
)

type GatewayErrorKind string

const (
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"
	KindUpstream     GatewayErrorKind = "UPSTREAM"
	KindUnreachable  GatewayErrorKind = "UNREACHABLE"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func wrapGatewayErr(msg string, err error, kind GatewayErrorKind) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
