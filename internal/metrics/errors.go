package metrics

import "errors"

var (
	// ErrPlatform means a host data source was unavailable, malformed or denied.
	ErrPlatform = errors.New("platform data source unavailable")
	// ErrParse means a value did not match its expected textual format.
	ErrParse = errors.New("unexpected format")
	// ErrEnumeration means the interface list could not be obtained at all.
	ErrEnumeration = errors.New("interface enumeration failed")
)

// Error records the operation that failed, the kind of failure and its cause.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func platformError(op string, err error) error {
	return &Error{Op: op, Kind: ErrPlatform, Err: err}
}
