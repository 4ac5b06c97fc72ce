// Package usecase contains the application-specific business rules.
package usecase

// Subscription is a handle on a live query.
type Subscription interface {
	// Unsubscribe stops the live query. It is safe to call more than once and
	// from inside the change callback.
	Unsubscribe()
}
