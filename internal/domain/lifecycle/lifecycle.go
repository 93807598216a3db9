// Package lifecycle holds shared timeouts for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations such as HTTP
// shutdown and database pings.
const DefaultTimeout = 10 * time.Second
