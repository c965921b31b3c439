// Package signout implements the sign-out sub-state-machine: the resolver,
// states, events, and actions that take a signed-in session to a signed-out
// device.
//
// # Flow
//
// A sign-out starts from NotStarted with one of four entry events, depending
// on how much remote cleanup the caller wants:
//
//	InvokeHostedFlow -> SigningOutViaHostedFlow  (hosted UI first)
//	SignOutGlobally  -> SigningOutGlobally       (revoke all devices)
//	RevokeToken      -> RevokingToken            (revoke this refresh token)
//	SignOutLocally   -> SigningOutLocally        (clear local records only)
//
// and converges on one of two terminal states: SignedOut or Error.
//
// # Policy
//
// Hosted-flow cancellation by the user is a recoverable terminal error; it is
// never silently retried. Every other remote failure degrades to a local
// sign-out: the global sign-out and token-revocation errors are carried along
// and reported in SignedOutData, but local credentials are always cleared
// eventually. Only a failure to clear the local store itself produces a
// non-recoverable Error.
//
// # Environment
//
// Actions resolve their collaborators (IdentityProviderClient,
// CredentialStore, HostedFlow) through the EnvironmentProvider interface on
// the engine environment, and report every failure as a dispatched event;
// nothing escapes the action boundary.
package signout
