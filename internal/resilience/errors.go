package resilience

import (
	"context"
	"errors"
	"net"
	"strings"
)

// IsTimeout returns true if the error (or any error in its chain) is a
// network or context timeout. Only timeouts are retried; any other
// failure surfaces immediately so the caller can decide whether to fall
// back.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	// String-based fallback for wrapped errors from HTTP clients.
	msg := strings.ToLower(err.Error())
	for _, p := range []string{
		"i/o timeout",
		"tls handshake timeout",
		"timeout exceeded while awaiting headers",
	} {
		if strings.Contains(msg, p) {
			return true
		}
	}

	return false
}
