// Package credstate runs persisted-credential operations through their own
// small state machine, so loads, stores and clears are serialized and every
// outcome is observable as a state.
//
// The machine accepts one operation at a time from NotConfigured or Idle
// (LoadCredentialStore, StoreCredentials, ClearCredentials), parks in the
// matching in-flight state, and lands in Success or Error. MoveToIdle returns
// it to Idle for the next operation.
//
// An absent persisted record is not a failure: loading it completes with
// Success{Empty: true}. Only genuine storage failures reach the Error state.
package credstate
