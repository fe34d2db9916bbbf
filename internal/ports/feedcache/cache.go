package feedcache

import "context"

// PageCache short-lived store for rendered feed pages.
// Entries expire on their own; Invalidate is the only other way to drop them.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context) error
}
