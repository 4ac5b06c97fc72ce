// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a server started by startServer and stopped through its fx hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
