// Package appctx provides call-scoped context for the application services.
//
// The acting user travels in the context.Context of every service call:
//
//	ctx = appctx.WithActor(ctx, userID)
//
// Inside a service call, a RequestContext memoizes project-level reads so
// that a command fanned out over many tickets loads the project, its board
// and its tags once:
//
//	rc := appctx.New(ctx)
//	cols, err := appctx.GetOrFetch(rc, "columns:"+id.String(), fetchColumns)
//
// Tickets themselves are never memoized; they must be re-read before every
// attempt so the optimistic-concurrency check sees the latest state. A retry
// after a write conflict drops the cached board, tags and memberships with
// Invalidate and InvalidatePrefix.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type actorKey struct{}

// WithActor returns a context carrying the ID of the user on whose behalf
// service calls are made.
func WithActor(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorKey{}, actorID)
}

// ActorFrom returns the acting user stored by WithActor.
func ActorFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// RequestContext is a call-scoped context wrapper with an in-memory read
// cache. Create one per service call; it is safe for use by the goroutines
// serving that call.
type RequestContext struct {
	context.Context

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
type cacheEntry struct {
	value any
	err   error
}

// New creates a RequestContext wrapping ctx with an empty cache.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Errors are cached too, so a missing entity is looked
// up once.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
//
// fetchFn runs without the cache lock held; concurrent callers missing the
// same key may each call it, and the last result wins.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()

	return val, err
}

// Invalidate drops the cached entry for key, if any.
func (rc *RequestContext) Invalidate(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}

// InvalidatePrefix drops every cached entry whose key starts with prefix.
func (rc *RequestContext) InvalidatePrefix(prefix string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for key := range rc.cache {
		if strings.HasPrefix(key, prefix) {
			delete(rc.cache, key)
		}
	}
}
