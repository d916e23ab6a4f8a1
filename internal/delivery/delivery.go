// Package delivery defines the long-running entry points started by the fx application.
package delivery

import "context"

// Delivery is a server that blocks in Serve until it is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
