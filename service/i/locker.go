package i

import "context"

// Locker provides mutual exclusion across server instances.
type Locker interface {
	// Lock blocks until key is held and returns the function that releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
