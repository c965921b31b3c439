package authsession

// Configure initializes the machine before any identity exists. It is sent
// with ignoreIdentity so the in-memory active state is used regardless of key.
type Configure struct{}

func (Configure) Name() string { return "Auth.Configure" }

// InitiateSignIn starts a username/password sign-in.
type InitiateSignIn struct {
	Username string
	Password string
}

func (InitiateSignIn) Name() string { return "Auth.InitiateSignIn" }

// SignInCompleted reports a successful identity-provider exchange.
type SignInCompleted struct {
	Data SignedInData
}

func (SignInCompleted) Name() string { return "Auth.SignInCompleted" }

// RefreshSession requests a token refresh for the signed-in session.
type RefreshSession struct{}

func (RefreshSession) Name() string { return "Auth.RefreshSession" }

// SessionRefreshed reports the renewed token set.
type SessionRefreshed struct {
	Tokens Tokens
}

func (SessionRefreshed) Name() string { return "Auth.SessionRefreshed" }

// SignOutOptions selects how much remote cleanup a sign-out performs.
type SignOutOptions struct {
	HostedUI     bool
	Global       bool
	BypassCancel bool
}

// InitiateSignOut starts the sign-out sub-machine for the signed-in session.
type InitiateSignOut struct {
	Options SignOutOptions
}

func (InitiateSignOut) Name() string { return "Auth.InitiateSignOut" }

// ThrowError carries a failure from an action back into the machine.
type ThrowError struct {
	Err AuthError
}

func (ThrowError) Name() string { return "Auth.ThrowError" }
