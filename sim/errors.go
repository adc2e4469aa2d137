package sim

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrUnknownStation is returned (wrapped) by Registry operations that look up
// a station by name and find none.
var ErrUnknownStation = errors.New("unknown station")

// ErrDuplicateClient is returned (wrapped) by RequestByName when client_id is
// already present in the target station's queue.
var ErrDuplicateClient = errors.New("client already in queue")

// fatalf reports a contract violation and aborts the process. Contract
// violations indicate a bug in the host model, not a
// recoverable condition: an unknown station passed where a station value was
// required, Leave called on an empty queue, Leave called with a client id
// that doesn't match the head of the queue, or out-of-range PRNG stream
// access.
func fatalf(format string, args ...any) {
	logrus.Fatalf(format, args...)
}
