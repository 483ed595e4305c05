// Package lifecycle holds process-wide limits for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of every component.
const DefaultTimeout = 10 * time.Second
