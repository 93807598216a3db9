// Package delivery defines the contract every transport front-end
// (HTTP server, workers) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
