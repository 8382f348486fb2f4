package ntru

import "errors"

// The closed set of failure modes. Every fallible operation returns one of
// these sentinels, possibly wrapped with context; callers match with
// errors.Is. Decrypt reports tampering and wrong-key use through
// ErrMd0Violation, ErrNoZeroPad and ErrInvalidEncoding rather than a
// generic failure so the cases stay distinguishable.
var (
	ErrOutOfMemory      = errors.New("ntru: out of memory")
	ErrPrng             = errors.New("ntru: randomness generation failed")
	ErrMessageTooLong   = errors.New("ntru: message longer than the parameter set allows")
	ErrInvalidMaxLength = errors.New("ntru: declared message length exceeds the parameter bound")
	ErrMd0Violation     = errors.New("ntru: padding check failed")
	ErrNoZeroPad        = errors.New("ntru: message padding is not zero")
	ErrInvalidEncoding  = errors.New("ntru: invalid encoding")
	ErrNullArgument     = errors.New("ntru: nil argument")
	ErrUnknownParamSet  = errors.New("ntru: unknown parameter set")
	ErrInvalidParam     = errors.New("ntru: invalid parameter set")
	ErrInvalidKey       = errors.New("ntru: invalid key")
)
