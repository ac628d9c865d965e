package dispatch

import "errors"

// errLagged is the terminal error carried by the OutMsg sent to a
// subscriber evicted for a full outbound channel. The subscription handler
// translates it to gRPC status Internal("lagged").
var errLagged = errors.New("lagged")

// ErrLagged reports whether err is the lag-eviction terminal sentinel.
func ErrLagged(err error) bool {
	return errors.Is(err, errLagged)
}
