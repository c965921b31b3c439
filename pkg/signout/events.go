package signout

// InvokeHostedFlow starts a sign-out that begins with the hosted sign-out UI.
type InvokeHostedFlow struct {
	Session       SignedInSession
	GlobalSignOut bool
	BypassCancel  bool
}

func (InvokeHostedFlow) Name() string { return "SignOut.InvokeHostedFlow" }

// SignOutGlobally requests the provider-side global sign-out.
type SignOutGlobally struct {
	Session SignedInSession
}

func (SignOutGlobally) Name() string { return "SignOut.SignOutGlobally" }

// RevokeToken requests refresh-token revocation.
type RevokeToken struct {
	Session SignedInSession

	// GlobalSignOutError carries a prior global sign-out failure forward so
	// the terminal state can report it.
	GlobalSignOutError error
}

func (RevokeToken) Name() string { return "SignOut.RevokeToken" }

// SignOutLocally requests clearing of the local credential records.
type SignOutLocally struct {
	Session            SignedInSession
	GlobalSignOutError error
	RevokeTokenError   error
}

func (SignOutLocally) Name() string { return "SignOut.SignOutLocally" }

// UserCancelled reports that the user dismissed the hosted sign-out UI.
type UserCancelled struct{}

func (UserCancelled) Name() string { return "SignOut.UserCancelled" }

// CredentialsCleared reports that the local credential records were removed.
type CredentialsCleared struct{}

func (CredentialsCleared) Name() string { return "SignOut.CredentialsCleared" }

// CredentialsClearFailed reports that clearing local credentials failed.
type CredentialsClearFailed struct {
	Err error
}

func (CredentialsClearFailed) Name() string { return "SignOut.CredentialsClearFailed" }

// GlobalSignOutFailed reports that the provider's global sign-out call failed.
type GlobalSignOutFailed struct {
	Session SignedInSession
	Err     error
}

func (GlobalSignOutFailed) Name() string { return "SignOut.GlobalSignOutFailed" }
