// Package cache provides the read-through response cache used by the
// controllers. Entries are keyed by (entity family, request URI) and any
// write to a family flushes the whole family. The cache is best effort:
// a miss or a backend error never fails the request.
package cache

import (
	"context"
)

type Store interface {
	Get(ctx context.Context, family, key string) ([]byte, bool)
	Set(ctx context.Context, family, key string, value []byte)
	// Invalidate drops every cached entry of the family.
	Invalidate(ctx context.Context, family string)
}
