package interfaces

import "context"

// IStatusCache optionally throttles gateway polling.
//
// Only PENDING outcomes are ever cached, for a few seconds: a browser tab
// polling every second should not translate into one gateway call per poll.
// Trust decisions never come from the cache.
//
//go:generate mockgen -source=status_cache_interface.go -destination=mocks/mock_status_cache_interface.go -package=mocks
type IStatusCache interface {
	GetPending(ctx context.Context, reference string) (bool, error)
	SetPending(ctx context.Context, reference string) error
}
