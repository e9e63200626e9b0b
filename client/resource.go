package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Record is any API entity with an integer identifier.
type Record interface {
	GetID() uint
}

// Resource manages the in-memory collection for one endpoint: the current
// list, a loading flag and the last error. Mutating operations update the
// local list only on success; failures leave it untouched.
type Resource[T Record] struct {
	client *Client
	path   string

	mu      sync.Mutex
	items   []T
	loading bool
	lastErr error
}

type resourceOptions struct {
	autoFetch bool
}

// ResourceOption configures a Resource at construction.
type ResourceOption func(*resourceOptions)

// WithoutAutoFetch disables the initial fetch-all NewResource performs.
func WithoutAutoFetch() ResourceOption {
	return func(o *resourceOptions) {
		o.autoFetch = false
	}
}

// NewResource builds a Resource for the collection at path (e.g.
// "/api/v1/pets"). Unless opted out, it fetches the collection once
// before returning; a failed initial fetch is recorded in Err, not
// returned, so construction always succeeds.
func NewResource[T Record](ctx context.Context, c *Client, path string, opts ...ResourceOption) *Resource[T] {
	o := resourceOptions{autoFetch: true}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Resource[T]{
		client: c,
		path:   path,
		items:  []T{},
	}
	if o.autoFetch {
		_ = r.FetchAll(ctx)
	}
	return r
}

// FetchAll replaces the local list with the server's collection. The
// loading flag transitions true then false exactly once per call,
// regardless of outcome.
func (r *Resource[T]) FetchAll(ctx context.Context) error {
	r.mu.Lock()
	r.loading = true
	r.lastErr = nil
	r.mu.Unlock()

	var items []T
	err := r.client.Do(ctx, http.MethodGet, r.path, nil, &items)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false
	if err != nil {
		r.lastErr = err
		return err
	}
	if items == nil {
		items = []T{}
	}
	r.items = items
	return nil
}

// FetchOne loads a single record without touching the local list.
func (r *Resource[T]) FetchOne(ctx context.Context, id uint) (T, error) {
	var item T
	if err := r.client.Do(ctx, http.MethodGet, r.itemPath(id), nil, &item); err != nil {
		return item, err
	}
	return item, nil
}

// Create posts a new record and appends the server's version to the local
// list on success.
func (r *Resource[T]) Create(ctx context.Context, rec T) (T, error) {
	var created T
	if err := r.client.Do(ctx, http.MethodPost, r.path, rec, &created); err != nil {
		return created, err
	}
	if created.GetID() == 0 {
		return created, errors.New("empty response from server")
	}

	r.mu.Lock()
	r.items = append(r.items, created)
	r.mu.Unlock()
	return created, nil
}

// Update puts changed fields for the record and replaces the matching
// local entry with the server's version on success.
func (r *Resource[T]) Update(ctx context.Context, id uint, rec T) (T, error) {
	var updated T
	if err := r.client.Do(ctx, http.MethodPut, r.itemPath(id), rec, &updated); err != nil {
		return updated, err
	}

	r.mu.Lock()
	for i := range r.items {
		if r.items[i].GetID() == id {
			r.items[i] = updated
			break
		}
	}
	r.mu.Unlock()
	return updated, nil
}

// Delete removes the record server-side, then drops it from the local list.
func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	if err := r.client.Do(ctx, http.MethodDelete, r.itemPath(id), nil, nil); err != nil {
		return err
	}

	r.mu.Lock()
	kept := r.items[:0]
	for _, item := range r.items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.mu.Unlock()
	return nil
}

// Items returns a copy of the current local list.
func (r *Resource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Loading reports whether a fetch-all is in flight.
func (r *Resource[T]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err returns the error recorded by the last fetch-all, nil after a
// successful one.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *Resource[T]) itemPath(id uint) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
