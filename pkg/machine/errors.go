package machine

import "errors"

var (
	// ErrNilResolver indicates an engine was constructed without a resolver.
	ErrNilResolver = errors.New("machine: resolver cannot be nil")

	// ErrNilStore indicates an engine was constructed without a state store.
	ErrNilStore = errors.New("machine: state store cannot be nil")
)
