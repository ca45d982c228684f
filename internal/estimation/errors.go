package estimation

import "errors"

var (
	// ErrDivisionByZero reports a capacity figure that would divide by a
	// non-positive weeks-per-period value.
	ErrDivisionByZero = errors.New("weeks per period must be greater than zero")

	// ErrOutOfRange reports demand that is not finite or too large to count.
	ErrOutOfRange = errors.New("demand is not a finite representable number of weeks")

	// ErrPreconditionViolation reports input to the accumulator that is not
	// sorted by (initiative, priority).
	ErrPreconditionViolation = errors.New("items are not sorted by initiative and priority")

	// ErrUnknownSetting indicates a settings key the effort model does not recognize.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidSetting indicates a recognized key with an unusable value.
	ErrInvalidSetting = errors.New("invalid setting value")
)
