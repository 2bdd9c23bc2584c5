package argload

import (
	"github.com/pkg/errors"
)

type unknownFlagError struct {
	cause error
}

// UnknownFlagError annotates an error as being caused by a flag or
// configuration key that matches no declared option.  When you have an
// unknown flag error, you should display the program usage help text.
func UnknownFlagError(err error) error {
	if err == nil {
		return nil
	}
	return unknownFlagError{
		cause: errors.WithStack(err),
	}
}

func (u unknownFlagError) Error() string { return u.cause.Error() }
func (u unknownFlagError) Unwrap() error { return u.cause }
func (u unknownFlagError) Cause() error  { return u.cause }
func (u unknownFlagError) Is(err error) bool {
	_, ok := err.(unknownFlagError)
	return ok
}

// IsUnknownFlag reports whether err came from an argument-vector flag
// or configuration-file key that matches no declared option.
func IsUnknownFlag(err error) bool {
	var u unknownFlagError
	return errors.Is(err, u)
}

type missingArgumentError struct {
	cause error
}

// MissingArgumentError annotates an error as being caused by a flag
// that expects a value but sits at the end of the argument vector.
func MissingArgumentError(err error) error {
	if err == nil {
		return nil
	}
	return missingArgumentError{
		cause: errors.WithStack(err),
	}
}

func (m missingArgumentError) Error() string { return m.cause.Error() }
func (m missingArgumentError) Unwrap() error { return m.cause }
func (m missingArgumentError) Cause() error  { return m.cause }
func (m missingArgumentError) Is(err error) bool {
	_, ok := err.(missingArgumentError)
	return ok
}

// IsMissingArgument reports whether err came from a flag that was
// given without the value it requires.
func IsMissingArgument(err error) bool {
	var m missingArgumentError
	return errors.Is(err, m)
}

type malformedLineError struct {
	cause error
}

// MalformedLineError annotates an error as being caused by a
// configuration-file line that has no key=value separator or a
// structured-config value that cannot be read as a string.
func MalformedLineError(err error) error {
	if err == nil {
		return nil
	}
	return malformedLineError{
		cause: errors.WithStack(err),
	}
}

func (m malformedLineError) Error() string { return m.cause.Error() }
func (m malformedLineError) Unwrap() error { return m.cause }
func (m malformedLineError) Cause() error  { return m.cause }
func (m malformedLineError) Is(err error) bool {
	_, ok := err.(malformedLineError)
	return ok
}

// IsMalformedLine reports whether err came from an unparseable
// configuration entry.
func IsMalformedLine(err error) bool {
	var m malformedLineError
	return errors.Is(err, m)
}

type helpRequestError struct {
	cause error
}

// HelpRequested returns the error that ApplyArgumentVector uses to
// signal that the help flag was given.  It is a signal, not a
// failure: the caller should print Usage() and exit successfully.
func HelpRequested() error {
	return helpRequestError{
		cause: errors.New("help requested"),
	}
}

func (h helpRequestError) Error() string { return h.cause.Error() }
func (h helpRequestError) Unwrap() error { return h.cause }
func (h helpRequestError) Cause() error  { return h.cause }
func (h helpRequestError) Is(err error) bool {
	_, ok := err.(helpRequestError)
	return ok
}

// IsHelpRequest reports whether err signals that the help flag was
// given.
func IsHelpRequest(err error) bool {
	var h helpRequestError
	return errors.Is(err, h)
}
