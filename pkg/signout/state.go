package signout

// SignedInSession is the snapshot of the signed-in session the sign-out flow
// operates on. It carries just enough to address the remote revocation calls
// and the local credential records.
type SignedInSession struct {
	Username     string `json:"username"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SignedOutData is carried by the terminal SignedOut state. The username is
// preserved from the signed-in snapshot; the error fields record remote-call
// failures that were degraded to a local sign-out.
type SignedOutData struct {
	Username           string
	GlobalSignOutError error
	RevokeTokenError   error
}

// NotStarted is the initial state of the sign-out flow.
type NotStarted struct{}

func (NotStarted) Name() string { return "SignOut.NotStarted" }

// SigningOutViaHostedFlow waits for the hosted sign-out UI to complete.
// BypassCancel suppresses user-cancellation handling when the flow is being
// replayed after an app restore rather than driven interactively.
type SigningOutViaHostedFlow struct {
	Session       SignedInSession
	GlobalSignOut bool
	BypassCancel  bool
}

func (SigningOutViaHostedFlow) Name() string { return "SignOut.SigningOutViaHostedFlow" }

// SigningOutGlobally waits for the provider's global sign-out call.
type SigningOutGlobally struct {
	Session SignedInSession
}

func (SigningOutGlobally) Name() string { return "SignOut.SigningOutGlobally" }

// RevokingToken waits for the refresh-token revocation call.
type RevokingToken struct {
	Session SignedInSession
}

func (RevokingToken) Name() string { return "SignOut.RevokingToken" }

// BuildingRevokeTokenError folds a failed global sign-out into a composite
// error before degrading to a local sign-out.
type BuildingRevokeTokenError struct {
	Session            SignedInSession
	GlobalSignOutError error
}

func (BuildingRevokeTokenError) Name() string { return "SignOut.BuildingRevokeTokenError" }

// SigningOutLocally waits for the local credential records to be cleared.
type SigningOutLocally struct {
	Session            SignedInSession
	GlobalSignOutError error
	RevokeTokenError   error
}

func (SigningOutLocally) Name() string { return "SignOut.SigningOutLocally" }

// SignedOut is the terminal success state.
type SignedOut struct {
	Data SignedOutData
}

func (SignedOut) Name() string { return "SignOut.SignedOut" }

// Error is the terminal failure state.
type Error struct {
	Err FlowError
}

func (Error) Name() string { return "SignOut.Error" }
