// Package authsession ties the state-machine engine to the auth domain: the
// top-level session states, the resolver that drives sign-in, token refresh
// and sign-out, and the per-identity session store with its promotion rules.
//
// # Lifecycle
//
// A state is created by the resolver in response to an event and lives in the
// bounded active-session stack until one of three things happens:
//
//  1. It reaches the established-session shape (authenticated identity plus
//     established tokens) and is promoted to the persisted credential store.
//     Promotion clears the entire stack: establishing a session is a fresh
//     device-level login context, and other in-flight identity attempts are
//     discarded rather than silently resumed later.
//  2. It reaches the signed-out shape and is removed along with its persisted
//     record.
//  3. It is evicted by capacity pressure.
//
// The persisted record survives process restarts; SessionStore.Resolve falls
// back to it when no in-memory entry exists, so a relaunched app resumes its
// established session. With nothing stored at all the store resolves to
// Configured, so a sign-in can be initiated right away; use
// WithInitialState(NotConfigured{}) to gate on an explicit Configure event
// instead.
//
// # Wiring
//
//	cfg, _ := authsession.Load()
//	creds, _ := credentialstore.New(storage, cfg.KeyConfig())
//	store, _ := authsession.NewSessionStore(creds,
//	    authsession.WithStackCapacity(cfg.StackCapacity))
//
//	engine := machine.MustNew(authsession.NewResolver(), store, authsession.Environment{
//	    Config:      cfg,
//	    Provider:    providerClient,
//	    Credentials: creds,
//	})
//	defer engine.Close()
//
//	engine.Send(authsession.InitiateSignIn{Username: "alice", Password: secret})
//
// Configuration comes from the environment (with optional .env support) or a
// YAML file; see Config.
package authsession
