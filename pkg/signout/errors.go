package signout

import "errors"

var (
	// ErrUserCancelled is returned by a HostedFlow when the user dismisses the
	// hosted sign-out UI.
	ErrUserCancelled = errors.New("signout: cancelled by user")

	// ErrMissingEnvironment indicates an action ran against an engine
	// environment that does not provide a sign-out environment.
	ErrMissingEnvironment = errors.New("signout: environment does not provide sign-out collaborators")
)

// FlowError is carried by the terminal Error state. Recoverable errors (such
// as a user-cancelled hosted flow) may be retried by starting a new sign-out;
// non-recoverable ones require caller intervention.
type FlowError struct {
	Message     string
	Cause       error
	Recoverable bool
}

func (e FlowError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e FlowError) Unwrap() error { return e.Cause }

// NewUserCancelledError builds the recoverable error reported when the hosted
// sign-out flow is dismissed.
func NewUserCancelledError() FlowError {
	return FlowError{
		Message:     "sign-out was cancelled by the user",
		Cause:       ErrUserCancelled,
		Recoverable: true,
	}
}

// NewLocalSignOutError builds the non-recoverable error reported when the
// local credential store could not be cleared.
func NewLocalSignOutError(cause error) FlowError {
	return FlowError{
		Message:     "failed to clear local credentials",
		Cause:       cause,
		Recoverable: false,
	}
}
