// Package lifecycle holds timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hooks such as pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
