package aw9523

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure surfaced by the driver.
type ErrorKind int

const (
	NotSupported ErrorKind = iota + 1
	InvalidArgument
	ReadError
	WriteError
)

func (k ErrorKind) String() string {
	switch k {
	case NotSupported:
		return "not supported"
	case InvalidArgument:
		return "invalid argument"
	case ReadError:
		return "read error"
	case WriteError:
		return "write error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error lets a bare kind be used as an errors.Is target.
func (k ErrorKind) Error() string {
	return "aw9523: " + k.String()
}

// ErrReleased is wrapped by commands sent through an interface whose bus was handed back.
var ErrReleased = errors.New("i2c interface released")

type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := "aw9523: " + e.Kind.String()
	if e.Op != "" {
		msg += " (" + e.Op + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0 if there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
