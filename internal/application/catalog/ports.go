package catalog

import "context"

// ImageStore resolves image keys stored on catalog entities to URLs a
// browser can load. Uploads happen outside this service.
type ImageStore interface {
	// URL returns a fetchable URL for key
	URL(ctx context.Context, key string) (string, error)

	// Exists reports whether key is present in the store
	Exists(ctx context.Context, key string) (bool, error)
}
