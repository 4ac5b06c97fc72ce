package service

import "context"

// ChangeFeed signals that a collection changed so live queries can re-query it.
// Signals carry no payload and may be coalesced.
type ChangeFeed interface {
	// Publish announces that the collection changed.
	Publish(ctx context.Context, collection string) error

	// Subscribe registers for change signals on the collection. The returned cancel
	// func releases the registration and is safe to call more than once.
	Subscribe(collection string) (signals <-chan struct{}, cancel func())
}
