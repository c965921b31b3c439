package machine

import "github.com/google/uuid"

// ListenerToken is an opaque handle identifying a subscribed listener for
// later removal. Tokens are comparable and safe to use as map keys.
type ListenerToken string

// NewListenerToken returns a unique listener token.
func NewListenerToken() ListenerToken {
	return ListenerToken(uuid.NewString())
}
