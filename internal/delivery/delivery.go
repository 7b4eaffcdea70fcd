// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is one independently served transport (public HTTP API, worker).
// All deliveries are collected in an fx value group and started together.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
